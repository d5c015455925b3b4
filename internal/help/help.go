// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package help

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"
)

// DetectorInfo contains standardized information about a detector
type DetectorInfo struct {
	Name                string   // Name of the detector (e.g., "PHONE")
	ShortDescription    string   // Short description for the detectors list
	DetailedDescription string   // Detailed description of what the detector finds
	Patterns            []string // Shapes the detector looks for
	PositiveKeywords    []string // Context keywords that let ambiguous candidates through
	Examples            []string // Usage examples
}

// Provider defines the interface for help content providers
type Provider interface {
	GetDetectorInfo() DetectorInfo
}

// System manages help content for the application
type System struct {
	providers map[string]Provider
	colors    map[string]*color.Color
}

// NewSystem creates a new help system
func NewSystem(noColor bool) *System {
	if noColor {
		color.NoColor = true
	}

	return &System{
		providers: make(map[string]Provider),
		colors: map[string]*color.Color{
			"title":    color.New(color.FgWhite, color.Bold),
			"header":   color.New(color.FgBlue, color.Bold),
			"emphasis": color.New(color.FgWhite, color.Bold),
			"negative": color.New(color.FgRed),
			"example":  color.New(color.FgMagenta),
		},
	}
}

// RegisterProvider adds a help provider to the system
func (h *System) RegisterProvider(provider Provider) {
	info := provider.GetDetectorInfo()
	h.providers[strings.ToLower(info.Name)] = provider
}

// ShowGeneralHelp displays general help information
func (h *System) ShowGeneralHelp() {
	h.colors["title"].Println("skyredact - Customer Message PII Redaction")
	fmt.Println("==========================================")
	fmt.Println()
	h.colors["header"].Println("USAGE:")
	fmt.Println("  skyredact --text <message> [options]")
	fmt.Println("  skyredact --file <path> [options]")
	fmt.Println("  skyredact --serve [--addr <addr>]  # HTTP server mode")
	fmt.Println("  echo <message> | skyredact         # read from stdin")
	fmt.Println()

	h.colors["header"].Println("OPTIONS:")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "  --text\t<message>\tMessage text to redact")
	fmt.Fprintln(w, "  --file\t<path>\tInput file to redact (.txt or .pdf)")
	fmt.Fprintln(w, "  --config\t<path>\tPath to configuration file (YAML)")
	fmt.Fprintln(w, "  --format\t<format>\tOutput format: text, json (default: text)")
	fmt.Fprintln(w, "  --scan\t\tReport detected entities instead of only redacted text")
	fmt.Fprintln(w, "  --show-match\t\tDisplay the detected text in findings (otherwise masked)")
	fmt.Fprintln(w, "  --serve\t\tRun as an HTTP service")
	fmt.Fprintln(w, "  --addr\t<addr>\tListen address for --serve (default: :8080)")
	fmt.Fprintln(w, "  --verbose\t\tDisplay detailed information")
	fmt.Fprintln(w, "  --debug\t\tEnable per-operation debug logging")
	fmt.Fprintln(w, "  --no-color\t\tDisable colored output")
	fmt.Fprintln(w, "  --version\t\tShow version information")
	fmt.Fprintln(w, "  --help\t[detector]\tShow this help, or detail for one detector")
	w.Flush()

	fmt.Println()
	h.colors["header"].Println("Examples:")
	h.colors["example"].Println("  skyredact --text \"Passenger John Smith, PNR X9Y8Z7\"")
	h.colors["example"].Println("  skyredact --file itinerary.pdf --scan --format json")
	h.colors["example"].Println("  skyredact --serve --addr :9000")

	fmt.Println()
	h.colors["header"].Println("CONFIGURATION:")
	fmt.Println("  Project config: skyredact.yaml (in current directory)")
	fmt.Println("  User config:    ~/.config/skyredact/config.yaml")
	fmt.Println("  Environment:    SKYREDACT_CONFIG - Override config file path")
}

// ShowDetectorsHelp displays information about all available detectors
func (h *System) ShowDetectorsHelp() {
	h.colors["title"].Println("Available Detectors")
	fmt.Println("===================")
	fmt.Println()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	h.colors["header"].Fprintln(w, "  DETECTOR\tDESCRIPTION")
	h.colors["header"].Fprintln(w, "  --------\t-----------")

	var names []string
	for _, provider := range h.providers {
		names = append(names, provider.GetDetectorInfo().Name)
	}
	sort.Strings(names)

	for _, name := range names {
		info := h.providers[strings.ToLower(name)].GetDetectorInfo()
		fmt.Fprintf(w, "  ")
		h.colors["emphasis"].Fprintf(w, "%s", info.Name)
		fmt.Fprintf(w, "\t%s\n", info.ShortDescription)
	}
	w.Flush()

	fmt.Println()
	fmt.Println("For detailed information about a specific detector, use:")
	h.colors["example"].Println("  skyredact --help <detector>")
}

// ShowDetectorHelp displays detailed help for a specific detector
func (h *System) ShowDetectorHelp(name string) bool {
	provider, exists := h.providers[strings.ToLower(name)]
	if !exists {
		h.colors["negative"].Printf("Error: Detector %q not found.\n", name)
		fmt.Println("Use 'skyredact --help detectors' to see the available detectors.")
		return false
	}

	info := provider.GetDetectorInfo()

	h.colors["title"].Printf("%s Detector\n", info.Name)
	fmt.Println(strings.Repeat("=", len(info.Name)+9))
	fmt.Println()
	fmt.Println(info.DetailedDescription)

	if len(info.Patterns) > 0 {
		fmt.Println()
		h.colors["header"].Println("PATTERNS:")
		for _, p := range info.Patterns {
			fmt.Printf("  - %s\n", p)
		}
	}

	if len(info.PositiveKeywords) > 0 {
		fmt.Println()
		h.colors["header"].Println("CONTEXT KEYWORDS:")
		fmt.Printf("  %s\n", strings.Join(info.PositiveKeywords, ", "))
	}

	if len(info.Examples) > 0 {
		fmt.Println()
		h.colors["header"].Println("EXAMPLES:")
		for _, e := range info.Examples {
			h.colors["example"].Printf("  %s\n", e)
		}
	}

	return true
}
