package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/lox/rangecalc/handrange"
	"github.com/lox/rangecalc/poker"
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15"))

	rangeStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("14"))

	percentStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10"))

	categoryStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("12"))
)

type CLI struct {
	Debug    bool        `help:"Enable debug logging"`
	Measure  MeasureCmd  `cmd:"" help:"Measure what fraction of all 1326 starting hands a range covers"`
	Rank     RankCmd     `cmd:"" help:"Rank the best five-card hand from 5-7 card codes"`
	Profiles ProfilesCmd `cmd:"" help:"List range profiles with their coverage"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("rangecalc"),
		kong.Description("Hold'em hand ranking and range combinatorics"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
	)

	if cli.Debug {
		log.SetLevel(log.DebugLevel)
	}

	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}

type MeasureCmd struct {
	Ranges []string `arg:"" required:"" help:"Range notation strings, e.g. '88+, AJo+'"`
}

func (c *MeasureCmd) Run() error {
	type result struct {
		fraction float64
		combos   int
	}

	results := make([]result, len(c.Ranges))
	var g errgroup.Group
	for i, rangeText := range c.Ranges {
		i, rangeText := i, rangeText
		g.Go(func() error {
			combos, err := handrange.Combos(rangeText)
			if err != nil {
				return fmt.Errorf("range %q: %w", rangeText, err)
			}
			results[i] = result{
				fraction: float64(combos) / 1326,
				combos:   combos,
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "%s\t%s\t%s\n",
		headerStyle.Render("range"),
		headerStyle.Render("combos"),
		headerStyle.Render("percent"))
	for i, rangeText := range c.Ranges {
		fmt.Fprintf(w, "%s\t%d\t%s\n",
			rangeStyle.Render(rangeText),
			results[i].combos,
			percentStyle.Render(formatPercent(results[i].fraction)))
	}
	return w.Flush()
}

type RankCmd struct {
	Cards []string `arg:"" required:"" help:"Card codes, suit then rank (e.g. SA HK DQ CJ ST)"`
}

func (c *RankCmd) Run() error {
	codes := splitCodes(c.Cards)
	if len(codes) < 5 || len(codes) > 7 {
		return fmt.Errorf("expected 5-7 cards, got %d", len(codes))
	}

	hand, err := poker.ParseHand(codes...)
	if err != nil {
		return err
	}
	log.Debug("parsed hand", "cards", hand.String())

	rank := hand.Rank()
	fmt.Printf("%s  %s (detail %d)\n",
		rangeStyle.Render(hand.String()),
		categoryStyle.Render(rank.Category.String()),
		rank.Detail)
	return nil
}

type ProfilesCmd struct {
	Config string `short:"c" default:"ranges.hcl" help:"Path to the HCL profile file"`
}

func (c *ProfilesCmd) Run() error {
	profiles, err := handrange.LoadProfiles(c.Config)
	if err != nil {
		return err
	}
	log.Debug("loaded profiles", "file", c.Config, "count", len(profiles))

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "%s\t%s\t%s\n",
		headerStyle.Render("profile"),
		headerStyle.Render("percent"),
		headerStyle.Render("range"))
	for _, p := range profiles {
		fraction, err := handrange.Measure(p.Range)
		if err != nil {
			return fmt.Errorf("profile %q: %w", p.Name, err)
		}
		fmt.Fprintf(w, "%s\t%s\t%s\n",
			rangeStyle.Render(p.Name),
			percentStyle.Render(formatPercent(fraction)),
			p.Range)
	}
	return w.Flush()
}

// splitCodes accepts cards either as separate args or space-joined strings.
func splitCodes(args []string) []string {
	var codes []string
	for _, arg := range args {
		codes = append(codes, strings.Fields(arg)...)
	}
	return codes
}

func formatPercent(fraction float64) string {
	return fmt.Sprintf("%.2f%%", fraction*100)
}
