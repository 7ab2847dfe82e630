package discord

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/solapet/petduel/internal/models"
	"github.com/solapet/petduel/internal/services/duel"
)

// renderStatBar renders a ten segment bar for a pet attribute
func renderStatBar(value int) string {
	segments := 10
	filled := (value * segments) / models.StatMax
	if filled == 0 && value > 0 {
		filled = 1 // Show at least one segment if anything is left
	}

	var bar strings.Builder
	for j := 0; j < segments; j++ {
		if j < filled {
			bar.WriteString("🟩")
		} else {
			bar.WriteString("⬜")
		}
	}

	return bar.String()
}

// renderPetFields builds the embed fields for a pet's current attributes
func renderPetFields(pet *models.PetStats) []*discordgo.MessageEmbedField {
	return []*discordgo.MessageEmbedField{
		{
			Name:   fmt.Sprintf("🍖 Hunger: %d/%d", pet.Hunger, models.StatMax),
			Value:  renderStatBar(pet.Hunger),
			Inline: false,
		},
		{
			Name:   fmt.Sprintf("🛁 Hygiene: %d/%d", pet.Hygiene, models.StatMax),
			Value:  renderStatBar(pet.Hygiene),
			Inline: false,
		},
		{
			Name:   fmt.Sprintf("⚡ Energy: %d/%d", pet.Energy, models.StatMax),
			Value:  renderStatBar(pet.Energy),
			Inline: false,
		},
	}
}

// renderPetMood picks a one-line summary based on the pet's worst attribute
func renderPetMood(pet *models.PetStats) string {
	worst := pet.Hunger
	if pet.Hygiene < worst {
		worst = pet.Hygiene
	}
	if pet.Energy < worst {
		worst = pet.Energy
	}

	switch {
	case worst >= 80:
		return "Your pet is thriving! 🌟"
	case worst >= 50:
		return "Your pet is doing fine, but could use some attention."
	case worst >= models.MinDuelEnergy:
		return "Your pet is struggling. Time for some care!"
	default:
		return "Your pet is in rough shape and too weak to duel. 🆘"
	}
}

// renderDuelFields builds the embed fields for a duel's current state
func renderDuelFields(d *models.Duel) []*discordgo.MessageEmbedField {
	fields := []*discordgo.MessageEmbedField{
		{
			Name:   "Status",
			Value:  string(d.Status),
			Inline: true,
		},
		{
			Name:   "Bet",
			Value:  renderBet(d.BetAmount),
			Inline: true,
		},
		{
			Name:   "Challenger",
			Value:  fmt.Sprintf("<@%s> — %d HP", d.ChallengerID, d.ChallengerHealth),
			Inline: false,
		},
	}

	if d.DefenderID != "" {
		fields = append(fields, &discordgo.MessageEmbedField{
			Name:   "Defender",
			Value:  fmt.Sprintf("<@%s> — %d HP", d.DefenderID, d.DefenderHealth),
			Inline: false,
		})
	}

	if d.Status == models.DuelStatusStarted {
		turnID := d.DefenderID
		if d.ChallengerTurn {
			turnID = d.ChallengerID
		}
		fields = append(fields, &discordgo.MessageEmbedField{
			Name:   "Turn",
			Value:  fmt.Sprintf("<@%s>", turnID),
			Inline: true,
		})
	}

	if d.Status == models.DuelStatusFinished && d.WinnerID != "" {
		fields = append(fields, &discordgo.MessageEmbedField{
			Name:   "Winner",
			Value:  fmt.Sprintf("<@%s> 🏆", d.WinnerID),
			Inline: true,
		})
	}

	return fields
}

func renderBet(betAmount int64) string {
	if betAmount == 0 {
		return "Friendly (no stakes)"
	}
	return fmt.Sprintf("%d per side", betAmount)
}

// renderAttackResult describes one turn of combat
func renderAttackResult(actorID string, output *duel.AttackOutput) string {
	var description strings.Builder

	description.WriteString(fmt.Sprintf("<@%s> strikes for **%d** damage! ⚔️\n\n", actorID, output.Damage))
	description.WriteString(fmt.Sprintf("<@%s>: %d HP\n", output.Duel.ChallengerID, output.Duel.ChallengerHealth))
	description.WriteString(fmt.Sprintf("<@%s>: %d HP\n", output.Duel.DefenderID, output.Duel.DefenderHealth))

	if output.Finished {
		description.WriteString(fmt.Sprintf("\n**<@%s> wins the duel!** 🏆 Use `/duel claim` to collect the pot.", output.Duel.WinnerID))
	}

	return description.String()
}

// renderOpenDuels lists duels waiting for a defender or mid-fight
func renderOpenDuels(duels []*models.Duel) string {
	if len(duels) == 0 {
		return "No open duels. Start one with `/duel challenge`!"
	}

	var description strings.Builder
	for _, d := range duels {
		switch d.Status {
		case models.DuelStatusChallenged:
			description.WriteString(fmt.Sprintf("`%s` — <@%s> awaits a challenger, %s\n", d.ID, d.ChallengerID, renderBet(d.BetAmount)))
		default:
			description.WriteString(fmt.Sprintf("`%s` — <@%s> vs <@%s>, %s\n", d.ID, d.ChallengerID, d.DefenderID, renderBet(d.BetAmount)))
		}
	}

	return description.String()
}
