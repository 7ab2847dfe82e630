package discord

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/solapet/petduel/internal/models"
	"github.com/solapet/petduel/internal/services/duel"
	"github.com/solapet/petduel/internal/signing"
)

// DuelCommand handles the /duel command
type DuelCommand struct {
	BaseCommand
	duelService duel.Service
}

// NewDuelCommand creates a new duel command handler
func NewDuelCommand(duelService duel.Service) *DuelCommand {
	return &DuelCommand{
		BaseCommand: BaseCommand{
			Name:        "duel",
			Description: "Pet dueling commands",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "challenge",
					Description: "Open a duel anyone can accept",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionInteger,
							Name:        "bet",
							Description: "Stake per side (0 for a friendly duel)",
							Required:    false,
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "accept",
					Description: "Accept an open duel as the defender",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "duel_id",
							Description: "The duel to accept",
							Required:    true,
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "attack",
					Description: "Take your turn in a duel",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "duel_id",
							Description: "The duel to attack in",
							Required:    true,
						},
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "signature",
							Description: "Base64 signature over the current turn",
							Required:    true,
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "claim",
					Description: "Collect the pot from a duel you won",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "duel_id",
							Description: "The duel to settle",
							Required:    true,
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "status",
					Description: "Show a duel and the message to sign for your next attack",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "duel_id",
							Description: "The duel to inspect",
							Required:    true,
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "list",
					Description: "List open duels",
				},
			},
		},
		duelService: duelService,
	}
}

// Handle processes a Discord interaction for the duel command
func (c *DuelCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
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
	case "challenge":
		err = c.handleChallenge(s, i, userID, options)
	case "accept":
		err = c.handleAccept(s, i, userID, stringOption(options, "duel_id"))
	case "attack":
		err = c.handleAttack(s, i, userID, options)
	case "claim":
		err = c.handleClaim(s, i, userID, stringOption(options, "duel_id"))
	case "status":
		err = c.handleStatus(s, i, userID, stringOption(options, "duel_id"))
	case "list":
		err = c.handleList(s, i)
	default:
		err = errors.New("unknown subcommand")
	}

	return err
}

func stringOption(options []*discordgo.ApplicationCommandInteractionDataOption, name string) string {
	for _, opt := range options {
		if opt.Name == name {
			return opt.StringValue()
		}
	}
	return ""
}

// handleChallenge handles the challenge subcommand
func (c *DuelCommand) handleChallenge(s *discordgo.Session, i *discordgo.InteractionCreate, userID string, options []*discordgo.ApplicationCommandInteractionDataOption) error {
	ctx := context.Background()

	var betAmount int64
	for _, opt := range options {
		if opt.Name == "bet" {
			betAmount = opt.IntValue()
		}
	}

	output, err := c.duelService.Challenge(ctx, &duel.ChallengeInput{
		ChallengerID: userID,
		BetAmount:    betAmount,
	})
	if err != nil {
		return c.respondDuelError(s, i, err, "open the duel")
	}

	acceptButton := discordgo.Button{
		Label:    "Accept Duel",
		Style:    discordgo.DangerButton,
		CustomID: ButtonAcceptDuel + ":" + output.Duel.ID,
		Emoji: &discordgo.ComponentEmoji{
			Name: "⚔️",
		},
	}

	return RespondWithEmbedAndButtons(s, i, "A Challenger Appears! ⚔️",
		fmt.Sprintf("<@%s> has opened a duel. Accept the challenge below or with `/duel accept duel_id:%s`.", userID, output.Duel.ID),
		renderDuelFields(output.Duel),
		[]discordgo.MessageComponent{acceptButton})
}

// handleAccept handles the accept subcommand and the accept button
func (c *DuelCommand) handleAccept(s *discordgo.Session, i *discordgo.InteractionCreate, userID, duelID string) error {
	ctx := context.Background()

	output, err := c.duelService.Accept(ctx, &duel.AcceptInput{
		DuelID:     duelID,
		DefenderID: userID,
	})
	if err != nil {
		return c.respondDuelError(s, i, err, "accept the duel")
	}

	return RespondWithEmbed(s, i, "The Duel Begins! 🥊",
		fmt.Sprintf("<@%s> accepted the challenge. <@%s> attacks first. Use `/duel status` to get the message to sign, then `/duel attack`.",
			userID, output.Duel.ChallengerID),
		renderDuelFields(output.Duel))
}

// HandleAcceptButton processes an accept button click
func (c *DuelCommand) HandleAcceptButton(s *discordgo.Session, i *discordgo.InteractionCreate, duelID string) error {
	return c.handleAccept(s, i, i.Member.User.ID, duelID)
}

// handleAttack handles the attack subcommand
func (c *DuelCommand) handleAttack(s *discordgo.Session, i *discordgo.InteractionCreate, userID string, options []*discordgo.ApplicationCommandInteractionDataOption) error {
	ctx := context.Background()

	duelID := stringOption(options, "duel_id")

	signature, err := base64.StdEncoding.DecodeString(stringOption(options, "signature"))
	if err != nil {
		return RespondWithError(s, i, "The signature must be base64 encoded.")
	}

	output, err := c.duelService.Attack(ctx, &duel.AttackInput{
		DuelID:    duelID,
		ActorID:   userID,
		Signature: signature,
	})
	if err != nil {
		return c.respondDuelError(s, i, err, "attack")
	}

	title := "Attack! ⚔️"
	if output.Finished {
		title = "Duel Over! 🏆"
	}

	return RespondWithEmbed(s, i, title, renderAttackResult(userID, output), nil)
}

// handleClaim handles the claim subcommand
func (c *DuelCommand) handleClaim(s *discordgo.Session, i *discordgo.InteractionCreate, userID, duelID string) error {
	ctx := context.Background()

	output, err := c.duelService.Claim(ctx, &duel.ClaimInput{
		DuelID:  duelID,
		ActorID: userID,
	})
	if err != nil {
		return c.respondDuelError(s, i, err, "claim the pot")
	}

	if output.Pot == 0 {
		return RespondWithMessage(s, i, "Friendly duel settled. Glory is its own reward! 🏆")
	}

	var description strings.Builder
	description.WriteString(fmt.Sprintf("<@%s> collects the winnings!\n\n", userID))
	description.WriteString(fmt.Sprintf("Pot: **%d**\n", output.Pot))
	description.WriteString(fmt.Sprintf("House fee: **%d**\n", output.Fee))
	description.WriteString(fmt.Sprintf("Payout: **%d** 💰", output.Payout))

	return RespondWithEmbed(s, i, "Pot Claimed! 💰", description.String(), nil)
}

// handleStatus handles the status subcommand
func (c *DuelCommand) handleStatus(s *discordgo.Session, i *discordgo.InteractionCreate, userID, duelID string) error {
	ctx := context.Background()

	output, err := c.duelService.GetDuel(ctx, &duel.GetDuelInput{
		DuelID: duelID,
	})
	if err != nil {
		return c.respondDuelError(s, i, err, "get the duel")
	}

	description := ""
	if output.Duel.Status == models.DuelStatusStarted {
		// The attacker signs this exact message to authorize their turn
		description = fmt.Sprintf("To attack, sign this message with your key and submit the base64 signature:\n```%s```",
			duel.AttackMessage(output.Duel))
	}

	return RespondWithEphemeralEmbed(s, i, "Duel Status", description, renderDuelFields(output.Duel))
}

// handleList handles the list subcommand
func (c *DuelCommand) handleList(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	ctx := context.Background()

	output, err := c.duelService.ListOpenDuels(ctx, &duel.ListOpenDuelsInput{})
	if err != nil {
		log.Printf("Error listing open duels: %v", err)
		return RespondWithError(s, i, fmt.Sprintf("Failed to list duels: %v", err))
	}

	return RespondWithEmbed(s, i, "Open Duels ⚔️", renderOpenDuels(output.Duels), nil)
}

// respondDuelError maps service errors to player-facing messages
func (c *DuelCommand) respondDuelError(s *discordgo.Session, i *discordgo.InteractionCreate, err error, action string) error {
	switch {
	case errors.Is(err, duel.ErrDuelNotFound):
		return RespondWithError(s, i, "That duel doesn't exist. Use `/duel list` to see open duels.")
	case errors.Is(err, duel.ErrPetNotFound):
		return RespondWithError(s, i, "You need a pet first. Use `/pet join` to enter the game.")
	case errors.Is(err, duel.ErrInsufficientPetEnergy):
		return RespondWithError(s, i, "Your pet is too tired to duel. Put it to sleep with `/pet sleep`.")
	case errors.Is(err, duel.ErrInvalidBetAmount):
		return RespondWithError(s, i, "The bet can't be negative.")
	case errors.Is(err, duel.ErrDuelAlreadyChallenged):
		return RespondWithError(s, i, "You already have an open duel. Finish it before starting another.")
	case errors.Is(err, duel.ErrUnauthorizedAction):
		return RespondWithError(s, i, "Only the winner can claim the pot.")
	case errors.Is(err, models.ErrDuelAlreadyStarted):
		return RespondWithError(s, i, "That duel already has a defender.")
	case errors.Is(err, models.ErrCannotChallengeSelf):
		return RespondWithError(s, i, "You can't duel your own pet.")
	case errors.Is(err, models.ErrDuelFinished):
		return RespondWithError(s, i, "That duel is over. The winner can claim the pot with `/duel claim`.")
	case errors.Is(err, models.ErrDuelNotFinished):
		return RespondWithError(s, i, "That duel isn't over yet.")
	case errors.Is(err, models.ErrNotChallengerTurn), errors.Is(err, models.ErrNotDefenderTurn):
		return RespondWithError(s, i, "It's not your turn!")
	case errors.Is(err, signing.ErrUnknownSigner):
		return RespondWithError(s, i, "No signing key is registered for you.")
	case errors.Is(err, signing.ErrInvalidSignature), errors.Is(err, signing.ErrSignatureNotVerified):
		return RespondWithError(s, i, "That signature doesn't check out. Sign the message from `/duel status` and try again.")
	default:
		log.Printf("Error trying to %s: %v", action, err)
		return RespondWithError(s, i, fmt.Sprintf("Failed to %s: %v", action, err))
	}
}
