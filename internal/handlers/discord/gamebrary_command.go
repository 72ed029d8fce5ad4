package discord

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/SamSam-01/Gamebrary/internal/common/identity"
	"github.com/SamSam-01/Gamebrary/internal/interchange"
	"github.com/SamSam-01/Gamebrary/internal/services/community"
	"github.com/SamSam-01/Gamebrary/internal/services/messaging"
	"github.com/SamSam-01/Gamebrary/internal/services/session"
	"github.com/SamSam-01/Gamebrary/internal/services/transfer"
	"github.com/bwmarrin/discordgo"
	"github.com/samber/lo"
)

// maxAttachmentBytes caps imported files
const maxAttachmentBytes = 1 << 20

// interactionTimeout bounds the work done for one interaction
const interactionTimeout = 30 * time.Second

// inputError is shown to the user as is
type inputError string

func (e inputError) Error() string {
	return string(e)
}

// reply is what a subcommand wants to show once it's done
type reply struct {
	embed      *discordgo.MessageEmbed
	components []discordgo.MessageComponent
	files      []*discordgo.File

	// failure marks an operation that completed but did not succeed
	failure string
}

// GamebraryCommand handles the /gamebrary command
type GamebraryCommand struct {
	BaseCommand
	transferService  transfer.Service
	sessionService   session.Service
	communityService community.Service
	messagingService messaging.Service
	views            *ViewStates
}

// NewGamebraryCommand creates a new gamebrary command handler
func NewGamebraryCommand(cfg *Config, views *ViewStates) *GamebraryCommand {
	return &GamebraryCommand{
		BaseCommand: BaseCommand{
			Name:        "gamebrary",
			Description: "Board game library and score keeping",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "import-json",
					Description: "Import a game from a JSON file",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionAttachment,
							Name:        "file",
							Description: "Game JSON file",
							Required:    true,
						},
						{
							Type:        discordgo.ApplicationCommandOptionBoolean,
							Name:        "public",
							Description: "Share the game with everyone",
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "import-csv",
					Description: "Import games from a CSV file",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionAttachment,
							Name:        "file",
							Description: "CSV file with a header row",
							Required:    true,
						},
						{
							Type:        discordgo.ApplicationCommandOptionBoolean,
							Name:        "public",
							Description: "Share the games with everyone",
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "export",
					Description: "Export a game as JSON",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "game",
							Description: "Game ID",
							Required:    true,
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "scores",
					Description: "Record final scores for a session",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "session",
							Description: "Session ID",
							Required:    true,
						},
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "scores",
							Description: "Scores by player, e.g. Alice=12, Bob=9.5",
							Required:    true,
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "standings",
					Description: "Show a session's standings",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "session",
							Description: "Session ID",
							Required:    true,
						},
					},
				},
			},
		},
		transferService:  cfg.TransferService,
		sessionService:   cfg.SessionService,
		communityService: cfg.CommunityService,
		messagingService: cfg.MessagingService,
		views:            views,
	}
}

// Handle processes a Discord interaction for the gamebrary command
func (c *GamebraryCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	if i.Type != discordgo.InteractionApplicationCommand {
		return nil
	}

	data := i.ApplicationCommandData()
	if data.Name != c.Name || len(data.Options) == 0 {
		return nil
	}

	userID, username := interactionUser(i)
	sub := data.Options[0]
	options := lo.KeyBy(sub.Options, func(o *discordgo.ApplicationCommandInteractionDataOption) string {
		return o.Name
	})

	switch sub.Name {
	case "import-json":
		return c.run(s, i, true, discordgo.InteractionResponseDeferredChannelMessageWithSource, func(ctx context.Context) (*reply, error) {
			return c.handleImportJSON(ctx, s, userID, username, attachment(data, options["file"]), boolOption(options["public"]))
		})
	case "import-csv":
		return c.run(s, i, true, discordgo.InteractionResponseDeferredChannelMessageWithSource, func(ctx context.Context) (*reply, error) {
			return c.handleImportCSV(ctx, s, userID, username, attachment(data, options["file"]), boolOption(options["public"]))
		})
	case "export":
		return c.run(s, i, false, discordgo.InteractionResponseDeferredChannelMessageWithSource, func(ctx context.Context) (*reply, error) {
			return c.handleExport(ctx, stringOption(options["game"]))
		})
	case "scores":
		return c.run(s, i, true, discordgo.InteractionResponseDeferredChannelMessageWithSource, func(ctx context.Context) (*reply, error) {
			return c.handleScores(ctx, userID, stringOption(options["session"]), stringOption(options["scores"]))
		})
	case "standings":
		return c.run(s, i, false, discordgo.InteractionResponseDeferredChannelMessageWithSource, func(ctx context.Context) (*reply, error) {
			return c.loadStandings(ctx, stringOption(options["session"]))
		})
	}

	return errors.New("unknown subcommand")
}

// HandleRefresh reloads the standings shown on a message
func (c *GamebraryCommand) HandleRefresh(s *discordgo.Session, i *discordgo.InteractionCreate, sessionID string) error {
	return c.run(s, i, false, discordgo.InteractionResponseDeferredMessageUpdate, func(ctx context.Context) (*reply, error) {
		return c.loadStandings(ctx, sessionID)
	})
}

// run drives a channel's view state around one unit of work. The interaction
// is acknowledged with deferType first, then edited with the outcome.
func (c *GamebraryCommand) run(s *discordgo.Session, i *discordgo.InteractionCreate, save bool, deferType discordgo.InteractionResponseType, fn func(ctx context.Context) (*reply, error)) error {
	channelID := i.ChannelID

	begin := c.views.BeginLoad
	if save {
		begin = c.views.BeginSave
	}
	if err := begin(channelID); err != nil {
		return RespondWithEphemeralMessage(s, i, "Hold on, "+err.Error()+".")
	}

	if err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{Type: deferType}); err != nil {
		c.finish(channelID, err, "Could not reach Discord.")
		return fmt.Errorf("failed to acknowledge interaction: %w", err)
	}

	userID, _ := interactionUser(i)
	ctx, cancel := context.WithTimeout(identity.WithUserID(context.Background(), userID), interactionTimeout)
	defer cancel()

	result, err := fn(ctx)
	if err != nil {
		message := c.errorMessage(ctx, err)
		c.finish(channelID, err, message)
		return EditWithError(s, i, message)
	}

	if result.failure != "" {
		c.finish(channelID, errors.New(result.failure), result.failure)
	} else {
		c.finish(channelID, nil, "")
	}

	return EditWithEmbed(s, i, result.embed, result.components, result.files)
}

func (c *GamebraryCommand) finish(channelID string, err error, message string) {
	if ferr := c.views.Finish(channelID, err, message); ferr != nil {
		log.Printf("View state for channel %s: %v", channelID, ferr)
	}
}

// errorMessage turns err into something safe to show
func (c *GamebraryCommand) errorMessage(ctx context.Context, err error) string {
	var input inputError
	if errors.As(err, &input) {
		return string(input)
	}

	out, merr := c.messagingService.GetErrorMessage(ctx, &messaging.GetErrorMessageInput{Err: err})
	if merr != nil {
		log.Printf("Error building error message: %v", merr)
		return "Something went wrong."
	}
	if out.Kind == messaging.ErrorKindPersistence {
		log.Printf("Error handling gamebrary command: %v", err)
	}
	return out.Message
}

// handleImportJSON handles the import-json subcommand
func (c *GamebraryCommand) handleImportJSON(ctx context.Context, s *discordgo.Session, userID, username string, file *discordgo.MessageAttachment, public bool) (*reply, error) {
	if err := c.ensureProfile(ctx, userID, username); err != nil {
		return nil, err
	}

	data, err := download(ctx, s.Client, file)
	if err != nil {
		return nil, err
	}

	result := c.transferService.ImportFromJSON(ctx, &transfer.ImportFromJSONInput{
		Data:     string(data),
		UserID:   userID,
		IsPublic: public,
	})

	title := ""
	if game, err := interchange.ParseJSON(data); err == nil {
		title = game.Title
	}

	msg, err := c.messagingService.GetImportMessage(ctx, &messaging.GetImportMessageInput{Title: title, Result: result})
	if err != nil {
		return nil, err
	}

	r := &reply{embed: renderImportEmbed(msg)}
	if !result.Success {
		r.failure = msg.Message
	}
	return r, nil
}

// handleImportCSV handles the import-csv subcommand
func (c *GamebraryCommand) handleImportCSV(ctx context.Context, s *discordgo.Session, userID, username string, file *discordgo.MessageAttachment, public bool) (*reply, error) {
	if err := c.ensureProfile(ctx, userID, username); err != nil {
		return nil, err
	}

	data, err := download(ctx, s.Client, file)
	if err != nil {
		return nil, err
	}

	output := c.transferService.ImportCSV(ctx, &transfer.ImportCSVInput{
		Text:     string(data),
		UserID:   userID,
		IsPublic: public,
	})

	msg, err := c.messagingService.GetBulkImportMessage(ctx, &messaging.GetBulkImportMessageInput{Output: output})
	if err != nil {
		return nil, err
	}

	r := &reply{embed: renderBulkImportEmbed(msg)}
	if output.Error != "" {
		r.failure = msg.Summary
	}
	return r, nil
}

// handleExport handles the export subcommand
func (c *GamebraryCommand) handleExport(ctx context.Context, gameID string) (*reply, error) {
	out, ok := c.transferService.ExportGame(ctx, &transfer.ExportGameInput{GameID: gameID})
	if !ok {
		return nil, inputError("That game could not be exported. Check the game ID.")
	}

	return &reply{
		embed: &discordgo.MessageEmbed{
			Title:       "Game exported",
			Description: fmt.Sprintf("**%s** is attached as JSON.", out.Title),
			Color:       colorSuccess,
		},
		files: []*discordgo.File{
			{
				Name:        interchange.FileName(out.Title),
				ContentType: "application/json",
				Reader:      strings.NewReader(out.JSON),
			},
		},
	}, nil
}

// handleScores handles the scores subcommand
func (c *GamebraryCommand) handleScores(ctx context.Context, userID, sessionID, text string) (*reply, error) {
	byName, err := parseScores(text)
	if err != nil {
		return nil, err
	}

	current, err := c.sessionService.GetSession(ctx, &session.GetSessionInput{SessionID: sessionID})
	if err != nil {
		return nil, err
	}

	scores, err := resolveScores(current.Standings, byName)
	if err != nil {
		return nil, err
	}

	_, err = c.sessionService.SaveScores(ctx, &session.SaveScoresInput{
		SessionID: sessionID,
		UserID:    userID,
		Scores:    scores,
	})
	if err != nil {
		return nil, err
	}

	return c.loadStandings(ctx, sessionID)
}

// loadStandings renders a session's standings with a refresh button
func (c *GamebraryCommand) loadStandings(ctx context.Context, sessionID string) (*reply, error) {
	out, err := c.sessionService.GetSession(ctx, &session.GetSessionInput{SessionID: sessionID})
	if err != nil {
		return nil, err
	}

	return &reply{
		embed:      renderStandingsEmbed(out.Standings),
		components: standingsComponents(sessionID),
	}, nil
}

// ensureProfile creates a profile for a Discord user on first use
func (c *GamebraryCommand) ensureProfile(ctx context.Context, userID, username string) error {
	_, err := c.communityService.GetProfile(ctx, &community.GetProfileInput{UserID: userID})
	if err == nil {
		return nil
	}
	if !errors.Is(err, community.ErrProfileNotFound) {
		return err
	}

	_, err = c.communityService.UpdateProfile(ctx, &community.UpdateProfileInput{UserID: userID, Username: username})
	if errors.Is(err, community.ErrUsernameTaken) {
		// Someone else already uses the display name
		suffix := userID
		if len(suffix) > 4 {
			suffix = suffix[len(suffix)-4:]
		}
		_, err = c.communityService.UpdateProfile(ctx, &community.UpdateProfileInput{
			UserID:   userID,
			Username: username + "-" + suffix,
		})
	}
	return err
}

// download fetches an attachment through the session's HTTP client
func download(ctx context.Context, client *http.Client, file *discordgo.MessageAttachment) ([]byte, error) {
	if file == nil {
		return nil, inputError("Attach a file to import.")
	}
	if file.Size > maxAttachmentBytes {
		return nil, inputError("That file is too large to import.")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, file.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build attachment request: %w", err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to download attachment: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to download attachment: status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxAttachmentBytes+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read attachment: %w", err)
	}
	if len(data) > maxAttachmentBytes {
		return nil, inputError("That file is too large to import.")
	}
	return data, nil
}

// interactionUser returns the acting user's ID and display name
func interactionUser(i *discordgo.InteractionCreate) (string, string) {
	if i.Member != nil && i.Member.User != nil {
		username := i.Member.User.Username
		if i.Member.Nick != "" {
			username = i.Member.Nick
		}
		return i.Member.User.ID, username
	}
	if i.User != nil {
		return i.User.ID, i.User.Username
	}
	return "", ""
}

func attachment(data discordgo.ApplicationCommandInteractionData, opt *discordgo.ApplicationCommandInteractionDataOption) *discordgo.MessageAttachment {
	if opt == nil || data.Resolved == nil {
		return nil
	}
	id, ok := opt.Value.(string)
	if !ok {
		return nil
	}
	return data.Resolved.Attachments[id]
}

func stringOption(opt *discordgo.ApplicationCommandInteractionDataOption) string {
	if opt == nil {
		return ""
	}
	return strings.TrimSpace(opt.StringValue())
}

func boolOption(opt *discordgo.ApplicationCommandInteractionDataOption) bool {
	return opt != nil && opt.BoolValue()
}
