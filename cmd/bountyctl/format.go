package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"

	"github.com/meatsuits/bountyboard/internal/bounty"
	"github.com/meatsuits/bountyboard/internal/worker"
	"github.com/meatsuits/bountyboard/pkg/palette"
)

// formatCredits renders 45200 as "45,200 CR".
func formatCredits(amount int64) string {
	return humanize.Comma(amount) + " CR"
}

// timeRemaining renders the time left until expiresAt as "2d 4h", "3h 5m",
// "14m" or "expired".
func timeRemaining(expiresAt, now time.Time) string {
	d := expiresAt.Sub(now)
	if d <= 0 {
		return "expired"
	}
	minutes := int(d / time.Minute)
	hours := minutes / 60
	days := hours / 24
	switch {
	case days > 0:
		if h := hours % 24; h > 0 {
			return fmt.Sprintf("%dd %dh", days, h)
		}
		return fmt.Sprintf("%dd", days)
	case hours > 0:
		if m := minutes % 60; m > 0 {
			return fmt.Sprintf("%dh %dm", hours, m)
		}
		return fmt.Sprintf("%dh", hours)
	}
	return fmt.Sprintf("%dm", minutes)
}

var (
	bountyStatusColors = map[bounty.Status]*color.Color{
		bounty.StatusOpen:         color.New(color.FgGreen),
		bounty.StatusClaimed:      color.New(color.FgYellow),
		bounty.StatusInProgress:   color.New(color.FgCyan),
		bounty.StatusVerification: color.New(color.FgMagenta),
		bounty.StatusCompleted:    color.New(color.FgBlue),
		bounty.StatusExpired:      color.New(color.FgHiBlack),
	}
	workerStatusColors = map[worker.Status]*color.Color{
		worker.StatusAvailable: color.New(color.FgGreen),
		worker.StatusEngaged:   color.New(color.FgYellow),
		worker.StatusOffline:   color.New(color.FgHiBlack),
	}
)

func colorize[K comparable](colors map[K]*color.Color, key K, text string) string {
	if c, ok := colors[key]; ok {
		return c.Sprint(text)
	}
	return text
}

func printBounties(w io.Writer, bounties []*bounty.Bounty, total int, now time.Time) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tSTATUS\tDIFFICULTY\tSECTOR\tREWARD\tEXPIRES\tTITLE")
	for _, b := range bounties {
		expires := "-"
		if b.Status == bounty.StatusOpen {
			expires = timeRemaining(b.ExpiresAt, now)
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			b.ID,
			colorize(bountyStatusColors, b.Status, string(b.Status)),
			b.Difficulty,
			palette.Sprint(b.Sector),
			formatCredits(b.RewardAmount),
			expires,
			b.Title,
		)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "%d of %d bounties\n", len(bounties), total)
	return err
}

func printBounty(w io.Writer, b *bounty.Bounty, now time.Time) error {
	claimedBy := "-"
	if b.ClaimedBy != nil {
		claimedBy = *b.ClaimedBy
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "ID:\t%s\n", b.ID)
	fmt.Fprintf(tw, "Title:\t%s\n", b.Title)
	fmt.Fprintf(tw, "Status:\t%s\n", colorize(bountyStatusColors, b.Status, string(b.Status)))
	fmt.Fprintf(tw, "Difficulty:\t%s\n", b.Difficulty)
	fmt.Fprintf(tw, "Sector:\t%s\n", palette.Sprint(b.Sector))
	fmt.Fprintf(tw, "Reward:\t%s\n", formatCredits(b.RewardAmount))
	fmt.Fprintf(tw, "Agent:\t%s\n", palette.Sprint(b.AgentID))
	fmt.Fprintf(tw, "Claimed by:\t%s\n", claimedBy)
	fmt.Fprintf(tw, "Expires:\t%s (%s)\n", b.ExpiresAt.Format(time.RFC3339), timeRemaining(b.ExpiresAt, now))
	if len(b.Requirements) > 0 {
		fmt.Fprintf(tw, "Requirements:\t%s\n", strings.Join(b.Requirements, ", "))
	}
	fmt.Fprintf(tw, "\n%s\n", b.Description)
	return tw.Flush()
}

func printWorkers(w io.Writer, workers []*worker.Worker, total int) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tCALLSIGN\tSTATUS\tSECTOR\tRATING\tTASKS\tEARNINGS\tSKILLS")
	for _, wk := range workers {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%.1f\t%d\t%s\t%s\n",
			wk.ID,
			wk.Callsign,
			colorize(workerStatusColors, wk.Status, string(wk.Status)),
			palette.Sprint(wk.Sector),
			wk.Rating,
			wk.CompletedTasks,
			formatCredits(wk.Earnings),
			strings.Join(wk.Skills, ", "),
		)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "%d workers\n", total)
	return err
}
