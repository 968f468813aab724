package tui

import (
	"fmt"

	"github.com/vovakirdan/shadow-paws/internal/games/shadowpaws"
)

type tutorialPage struct {
	title string
	lines []string
}

// tutorialPages builds the guide. Item pages are generated from the catalog.
func tutorialPages() []tutorialPage {
	var good, bad []string
	for _, k := range shadowpaws.Kinds() {
		spec := k.Spec()
		switch {
		case !spec.Good:
			bad = append(bad, fmt.Sprintf("%c  %s", spec.Glyph, spec.Name))
		case spec.Special:
			good = append(good, fmt.Sprintf("%c  %-7s %3d pts  invincibility, +5 combo", spec.Glyph, spec.Name, spec.Points))
		case spec.PowerUp != shadowpaws.PowerNone:
			good = append(good, fmt.Sprintf("%c  %-7s %3d pts  grants %s", spec.Glyph, spec.Name, spec.Points, spec.PowerUp))
		default:
			good = append(good, fmt.Sprintf("%c  %-7s %3d pts", spec.Glyph, spec.Name, spec.Points))
		}
	}
	bad = append(bad, "", "Each hit costs a life and breaks your combo.")

	return []tutorialPage{
		{
			title: "The Goal",
			lines: []string{
				"Guide the shadow cat through the night.",
				"Catch lucky charms and dodge bad luck.",
				"Every 12 catches clear a level and speed things up.",
				"Every third level gives back a life.",
				"Lose all nine lives and the night is over.",
			},
		},
		{
			title: "Controls",
			lines: []string{
				"Arrow keys / WASD   move the cat",
				"Mouse               the cat follows the pointer",
				"1 / Q               Pounce",
				"2 / E               Night Vision",
				"3 / R               Nine Lives",
				"P                   pause",
				"Esc                 back to the menu",
			},
		},
		{title: "Lucky Charms", lines: good},
		{title: "Bad Luck", lines: bad},
		{
			title: "Combos",
			lines: []string{
				"Catch charms back to back to build a combo.",
				"Every 5 combo raises the score multiplier by one.",
				"The combo fades if you stop catching for two seconds.",
				"Every 10 combo drops a shower of bonus stars.",
			},
		},
		{
			title: "Power-ups and Events",
			lines: []string{
				"Pounce: dash faster and slip through bad luck.",
				"Night Vision: spot charms entering from the top.",
				"Nine Lives: gain an extra life.",
				"",
				"Friday 13th: bad luck rains down, points +50%.",
				"Full Moon: everything glows, points doubled.",
				"",
				"Press Enter to practice at half speed.",
			},
		},
	}
}
