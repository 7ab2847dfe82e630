package discord

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/bwmarrin/discordgo"

	"github.com/solapet/petduel/internal/custody"
	"github.com/solapet/petduel/internal/models"
	"github.com/solapet/petduel/internal/services/pet"
)

// PetCommand handles the /pet command
type PetCommand struct {
	BaseCommand
	petService pet.Service
}

// NewPetCommand creates a new pet command handler
func NewPetCommand(petService pet.Service) *PetCommand {
	return &PetCommand{
		BaseCommand: BaseCommand{
			Name:        "pet",
			Description: "Pet care commands",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "join",
					Description: "Deposit your pet token and join the game",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "token",
							Description: "Your pet token reference",
							Required:    true,
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "status",
					Description: "Check on your pet",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "feed",
					Description: "Feed your pet",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "bathe",
					Description: "Bathe your pet",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "sleep",
					Description: "Put your pet to sleep to restore energy",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "withdraw",
					Description: "Leave the game and get your pet token back",
				},
			},
		},
		petService: petService,
	}
}

// Handle processes a Discord interaction for the pet command
func (c *PetCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	if i.Type != discordgo.InteractionApplicationCommand {
		return nil
	}

	data := i.ApplicationCommandData()
	if data.Name != c.Name {
		return nil
	}

	userID := i.Member.User.ID

	var err error
	switch data.Options[0].Name {
	case "join":
		err = c.handleJoin(s, i, userID, data.Options[0].Options)
	case "status":
		err = c.handleStatus(s, i, userID)
	case "feed":
		err = c.handleInteraction(s, i, userID, models.InteractionFeed)
	case "bathe":
		err = c.handleInteraction(s, i, userID, models.InteractionBathe)
	case "sleep":
		err = c.handleInteraction(s, i, userID, models.InteractionSleep)
	case "withdraw":
		err = c.handleWithdraw(s, i, userID)
	default:
		err = errors.New("unknown subcommand")
	}

	return err
}

// handleJoin handles the join subcommand
func (c *PetCommand) handleJoin(s *discordgo.Session, i *discordgo.InteractionCreate, userID string, options []*discordgo.ApplicationCommandInteractionDataOption) error {
	ctx := context.Background()

	tokenRef := ""
	for _, opt := range options {
		if opt.Name == "token" {
			tokenRef = opt.StringValue()
		}
	}

	output, err := c.petService.JoinGame(ctx, &pet.JoinGameInput{
		PlayerID: userID,
		TokenRef: tokenRef,
	})
	if err != nil {
		if errors.Is(err, pet.ErrPetAlreadyExists) {
			return RespondWithError(s, i, "You already have a pet in the game. Use `/pet status` to check on it.")
		}
		if errors.Is(err, custody.ErrAlreadyDeposited) {
			return RespondWithError(s, i, "Your pet token is already deposited.")
		}
		log.Printf("Error joining game: %v", err)
		return RespondWithError(s, i, fmt.Sprintf("Failed to join the game: %v", err))
	}

	return RespondWithEmbed(s, i, "Welcome to the Arena! 🐾",
		"Your pet token is safely deposited and your pet is ready to play. Keep it fed, clean and rested, then find an opponent with `/duel challenge`.",
		renderPetFields(output.Pet))
}

// handleStatus handles the status subcommand
func (c *PetCommand) handleStatus(s *discordgo.Session, i *discordgo.InteractionCreate, userID string) error {
	ctx := context.Background()

	output, err := c.petService.GetPet(ctx, &pet.GetPetInput{
		PlayerID: userID,
	})
	if err != nil {
		if errors.Is(err, pet.ErrPetNotFound) {
			return RespondWithError(s, i, "You don't have a pet yet. Use `/pet join` to enter the game.")
		}
		log.Printf("Error getting pet: %v", err)
		return RespondWithError(s, i, fmt.Sprintf("Failed to get your pet: %v", err))
	}

	return RespondWithEmbed(s, i, "Pet Status", renderPetMood(output.Pet), renderPetFields(output.Pet))
}

// handleInteraction handles the feed, bathe and sleep subcommands
func (c *PetCommand) handleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate, userID string, interactionType models.InteractionType) error {
	ctx := context.Background()

	output, err := c.petService.Interact(ctx, &pet.InteractInput{
		PlayerID: userID,
		Type:     interactionType,
	})
	if err != nil {
		if errors.Is(err, pet.ErrPetNotFound) {
			return RespondWithError(s, i, "You don't have a pet yet. Use `/pet join` to enter the game.")
		}
		if errors.Is(err, models.ErrInsufficientEnergy) {
			return RespondWithError(s, i, "Your pet isn't tired enough to sleep yet. Try again later.")
		}
		log.Printf("Error interacting with pet: %v", err)
		return RespondWithError(s, i, fmt.Sprintf("Failed to care for your pet: %v", err))
	}

	var title string
	switch interactionType {
	case models.InteractionFeed:
		title = "Nom nom nom! 🍖"
	case models.InteractionBathe:
		title = "Squeaky clean! 🛁"
	case models.InteractionSleep:
		title = "Zzzzz... 😴"
	}

	return RespondWithEmbed(s, i, title, renderPetMood(output.Pet), renderPetFields(output.Pet))
}

// handleWithdraw handles the withdraw subcommand
func (c *PetCommand) handleWithdraw(s *discordgo.Session, i *discordgo.InteractionCreate, userID string) error {
	ctx := context.Background()

	_, err := c.petService.Withdraw(ctx, &pet.WithdrawInput{
		PlayerID: userID,
	})
	if err != nil {
		if errors.Is(err, pet.ErrPetNotFound) {
			return RespondWithError(s, i, "You don't have a pet in the game.")
		}
		log.Printf("Error withdrawing pet: %v", err)
		return RespondWithError(s, i, fmt.Sprintf("Failed to withdraw: %v", err))
	}

	return RespondWithMessage(s, i, "Your pet token has been returned. Come back anytime with `/pet join`! 👋")
}
