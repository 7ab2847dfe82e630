package discord

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/bwmarrin/discordgo"

	"github.com/solapet/petduel/internal/services/admin"
)

// AdminCommand handles the /petadmin command
type AdminCommand struct {
	BaseCommand
	adminService admin.Service
}

// NewAdminCommand creates a new admin command handler
func NewAdminCommand(adminService admin.Service) *AdminCommand {
	return &AdminCommand{
		BaseCommand: BaseCommand{
			Name:        "petadmin",
			Description: "Game administration commands",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "init",
					Description: "Initialize the game configuration",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionInteger,
							Name:        "fee",
							Description: "Settlement fee percentage (0-100)",
							Required:    true,
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "setfees",
					Description: "Change the settlement fee",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionInteger,
							Name:        "fee",
							Description: "New fee percentage (0-100)",
							Required:    true,
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "config",
					Description: "Show the current game configuration",
				},
			},
		},
		adminService: adminService,
	}
}

// Handle processes a Discord interaction for the petadmin command
func (c *AdminCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	if i.Type != discordgo.InteractionApplicationCommand {
		return nil
	}

	data := i.ApplicationCommandData()
	if data.Name != c.Name {
		return nil
	}

	userID := i.Member.User.ID
	options := data.Options[0].Options

	var err error
	switch data.Options[0].Name {
	case "init":
		err = c.handleInit(s, i, userID, intOption(options, "fee"))
	case "setfees":
		err = c.handleSetFees(s, i, userID, intOption(options, "fee"))
	case "config":
		err = c.handleConfig(s, i)
	default:
		err = errors.New("unknown subcommand")
	}

	return err
}

func intOption(options []*discordgo.ApplicationCommandInteractionDataOption, name string) int {
	for _, opt := range options {
		if opt.Name == name {
			return int(opt.IntValue())
		}
	}
	return 0
}

// handleInit handles the init subcommand
func (c *AdminCommand) handleInit(s *discordgo.Session, i *discordgo.InteractionCreate, userID string, feePercent int) error {
	ctx := context.Background()

	output, err := c.adminService.InitConfig(ctx, &admin.InitConfigInput{
		AdminID:    userID,
		FeePercent: feePercent,
	})
	if err != nil {
		if errors.Is(err, admin.ErrConfigAlreadyInitialized) {
			return RespondWithError(s, i, "The game is already configured.")
		}
		if errors.Is(err, admin.ErrInvalidFeePercent) {
			return RespondWithError(s, i, "The fee must be between 0 and 100.")
		}
		log.Printf("Error initializing config: %v", err)
		return RespondWithError(s, i, fmt.Sprintf("Failed to initialize the game: %v", err))
	}

	return RespondWithEphemeralMessage(s, i,
		fmt.Sprintf("Game initialized with a %d%% settlement fee. You are the admin.", output.Config.FeePercent))
}

// handleSetFees handles the setfees subcommand
func (c *AdminCommand) handleSetFees(s *discordgo.Session, i *discordgo.InteractionCreate, userID string, feePercent int) error {
	ctx := context.Background()

	output, err := c.adminService.UpdateFees(ctx, &admin.UpdateFeesInput{
		ActorID:    userID,
		FeePercent: feePercent,
	})
	if err != nil {
		if errors.Is(err, admin.ErrConfigNotInitialized) {
			return RespondWithError(s, i, "The game hasn't been initialized yet. Use `/petadmin init`.")
		}
		if errors.Is(err, admin.ErrInvalidAdminAccess) {
			return RespondWithError(s, i, "Only the admin can change fees.")
		}
		if errors.Is(err, admin.ErrInvalidFeePercent) {
			return RespondWithError(s, i, "The fee must be between 0 and 100.")
		}
		log.Printf("Error updating fees: %v", err)
		return RespondWithError(s, i, fmt.Sprintf("Failed to update fees: %v", err))
	}

	return RespondWithEphemeralMessage(s, i,
		fmt.Sprintf("Settlement fee updated to %d%%.", output.Config.FeePercent))
}

// handleConfig handles the config subcommand
func (c *AdminCommand) handleConfig(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	ctx := context.Background()

	output, err := c.adminService.GetConfig(ctx, &admin.GetConfigInput{})
	if err != nil {
		if errors.Is(err, admin.ErrConfigNotInitialized) {
			return RespondWithError(s, i, "The game hasn't been initialized yet. Use `/petadmin init`.")
		}
		log.Printf("Error getting config: %v", err)
		return RespondWithError(s, i, fmt.Sprintf("Failed to get the configuration: %v", err))
	}

	fields := []*discordgo.MessageEmbedField{
		{
			Name:   "Admin",
			Value:  fmt.Sprintf("<@%s>", output.Config.AdminID),
			Inline: true,
		},
		{
			Name:   "Settlement Fee",
			Value:  fmt.Sprintf("%d%%", output.Config.FeePercent),
			Inline: true,
		},
	}

	return RespondWithEphemeralEmbed(s, i, "Game Configuration", "", fields)
}
