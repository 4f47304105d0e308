package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/calshare/calshare/internal/calendar"
	"github.com/calshare/calshare/internal/event"
	"github.com/calshare/calshare/internal/logger"
	"github.com/calshare/calshare/internal/share"
	"github.com/calshare/calshare/internal/tzdata"
)

const (
	ExitSuccess = 0
	ExitError   = 1
)

var (
	flagTitle       string
	flagDescription string
	flagDescHTML    string
	flagLocation    string
	flagStart       string
	flagEnd         string
	flagTimezone    string
	flagSourceURL   string
	flagDuration    string
	flagProvider    string
	flagFetchURL    string
	flagFormat      string
	flagMobile      bool
	flagVerbose     bool
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "calshare",
		Short: "Generate calendar-sharing links and iCalendar files",
		Long: `Generate "add to calendar" artifacts for a single event: deep links to
web calendars (Google, Yahoo, Outlook) and timezone-aware iCalendar text.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if flagVerbose {
				logger.SetDefault(logger.New(logger.LevelDebug, os.Stderr))
			}
		},
	}

	cmd.PersistentFlags().StringVar(&flagFormat, "format", "text", "Output format: text or json")
	cmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "Enable verbose logging")

	cmd.AddCommand(newLinkCmd())
	cmd.AddCommand(newICSCmd())
	cmd.AddCommand(newZonesCmd())

	return cmd
}

// addEventFlags defines the event description flags shared by link and ics
func addEventFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagTitle, "title", "", "Event title (required)")
	cmd.Flags().StringVar(&flagDescription, "description", "", "Event description")
	cmd.Flags().StringVar(&flagDescHTML, "description-html", "", "Event description as HTML markup")
	cmd.Flags().StringVar(&flagLocation, "location", "", "Event location")
	cmd.Flags().StringVar(&flagStart, "start", "", "Start instant, e.g. 2025-06-10T10:00:00+00:00 (required)")
	cmd.Flags().StringVar(&flagEnd, "end", "", "End instant (required)")
	cmd.Flags().StringVar(&flagTimezone, "timezone", "", "IANA timezone identifier; empty means floating")
	cmd.Flags().StringVar(&flagSourceURL, "url", "", "Source document URL embedded in the event")
	cmd.Flags().StringVar(&flagDuration, "duration", "", "Duration in HHMM or H.MM form (Yahoo links)")
	cmd.Flags().BoolVar(&flagMobile, "mobile", false, "Target a mobile context (ics emits a data URI)")

	cmd.MarkFlagRequired("title")
	cmd.MarkFlagRequired("start")
	cmd.MarkFlagRequired("end")
}

func newLinkCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "link",
		Short: "Build an add-to-calendar URL for a provider",
		RunE:  runLink,
	}
	addEventFlags(cmd)
	cmd.Flags().StringVar(&flagProvider, "provider", "google", "Provider: google, yahoo, outlook, or ics")
	return cmd
}

func newICSCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ics",
		Short: "Emit the iCalendar document for an event",
		RunE:  runICS,
	}
	addEventFlags(cmd)
	return cmd
}

func newZonesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "zones",
		Short: "List registered timezone tables",
		RunE:  runZones,
	}
	cmd.Flags().StringVar(&flagFetchURL, "fetch-url", "", "Fetch and register a timezone table bundle first")
	return cmd
}

// buildEvent assembles the event from flags
func buildEvent() (*event.Event, error) {
	evt := &event.Event{
		Title:       flagTitle,
		Description: flagDescription,
		Location:    flagLocation,
		Start:       flagStart,
		End:         flagEnd,
		Timezone:    flagTimezone,
		Duration:    flagDuration,
	}

	if flagDescHTML != "" {
		text, err := event.DescriptionFromHTML(flagDescHTML)
		if err != nil {
			return nil, fmt.Errorf("converting description: %w", err)
		}
		evt.Description = text
	}

	logger.Debug("Built event from flags", logger.Fields{
		"title":    evt.Title,
		"timezone": evt.Timezone,
	})
	return evt, nil
}

func newComposer() *calendar.Composer {
	return &calendar.Composer{
		SourceURL: flagSourceURL,
		IsMobile:  func() bool { return flagMobile },
	}
}

func runLink(cmd *cobra.Command, args []string) error {
	format, err := parseFormat(flagFormat)
	if err != nil {
		return err
	}

	provider, err := share.ParseProvider(strings.ToLower(flagProvider))
	if err != nil {
		return err
	}

	evt, err := buildEvent()
	if err != nil {
		return err
	}

	artifact, err := share.Build(provider, evt, newComposer())
	if err != nil {
		return fmt.Errorf("building %s artifact: %w", provider, err)
	}

	return WriteOutput(os.Stdout, &OutputResult{
		Provider: string(provider),
		Artifact: artifact,
	}, format)
}

func runICS(cmd *cobra.Command, args []string) error {
	format, err := parseFormat(flagFormat)
	if err != nil {
		return err
	}

	evt, err := buildEvent()
	if err != nil {
		return err
	}

	artifact, err := newComposer().Compose(evt)
	if err != nil {
		return fmt.Errorf("composing calendar: %w", err)
	}

	return WriteOutput(os.Stdout, &OutputResult{
		Provider: string(share.ICS),
		Artifact: artifact,
	}, format)
}

func runZones(cmd *cobra.Command, args []string) error {
	format, err := parseFormat(flagFormat)
	if err != nil {
		return err
	}

	if flagFetchURL != "" {
		count, err := tzdata.NewFetcher().Fetch(flagFetchURL)
		if err != nil {
			return fmt.Errorf("fetching bundle: %w", err)
		}
		logger.Debug("Fetched bundle", logger.Fields{"count": count})
	}

	return WriteOutput(os.Stdout, &OutputResult{
		Zones: tzdata.Names(),
	}, format)
}

// Execute runs the CLI
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(ExitError)
	}
}
