// Package main provides the CLI entrypoint for koalatype.
package main

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"koalatype/internal/config"
	"koalatype/internal/generator"
	"koalatype/internal/model"
	"koalatype/internal/pack"
	"koalatype/internal/score"
	"koalatype/internal/tui"
)

const (
	defaultPack     = "english"
	defaultWords    = 30
	defaultDuration = 30
)

var (
	practicePack     string
	practiceWords    int
	practiceSeed     int64
	practiceDuration int
	listPacks        bool
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "koalatype",
		Short:         "Offline CLI typing test",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runPracticeCmd,
	}

	rootCmd.Flags().StringVar(&practicePack, "pack", defaultPack, "word pack to use")
	rootCmd.Flags().IntVar(&practiceWords, "words", defaultWords, "number of words to generate")
	rootCmd.Flags().Int64Var(&practiceSeed, "seed", 0, "RNG seed for repeatable tests")
	rootCmd.Flags().IntVar(&practiceDuration, "duration", defaultDuration, "time limit in seconds (0 disables)")
	rootCmd.Flags().BoolVar(&listPacks, "list", false, "list available word packs")

	rootCmd.AddCommand(newPacksCmd())
	rootCmd.AddCommand(newConfigCmd())

	return rootCmd
}

func runPracticeCmd(cmd *cobra.Command, _ []string) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyStringConfig(cmd, "pack", &practicePack, fileCfg.Practice.Pack)
	applyIntConfig(cmd, "words", &practiceWords, fileCfg.Practice.Words)
	applyIntConfig(cmd, "duration", &practiceDuration, fileCfg.Practice.Duration)

	cfg := model.Config{
		Pack:     practicePack,
		Words:    practiceWords,
		Seed:     practiceSeed,
		Seeded:   cmd.Flags().Changed("seed"),
		Duration: practiceDuration,
	}
	if err := validateConfig(cfg); err != nil {
		return err
	}

	registry, err := loadRegistry()
	if err != nil {
		return err
	}

	if listPacks {
		return renderPackList(cmd.OutOrStdout(), registry)
	}

	selected, err := registry.Get(cfg.Pack)
	if err != nil {
		return fmt.Errorf("%w\navailable packs: koalatype --list", err)
	}

	var seed *int64
	if cfg.Seeded {
		seed = &cfg.Seed
	}
	prompt, err := generator.Generate(selected, cfg.Words, seed)
	if err != nil {
		return err
	}

	m := tui.NewModel(cfg, selected, prompt)
	program := tea.NewProgram(m, tea.WithAltScreen())
	finalModel, err := program.Run()
	if err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	if final, ok := finalModel.(*tui.Model); ok {
		if res, ok := final.FinalResult(); ok {
			printResult(res)
		}
	}
	return nil
}

func loadRegistry() (*pack.Registry, error) {
	registry := pack.NewRegistry()
	if err := pack.LoadDir(registry, config.DefaultPackDir()); err != nil {
		return nil, fmt.Errorf("failed to load word packs: %w", err)
	}
	return registry, nil
}

func newPacksCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "packs",
		Short: "List available word packs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			registry, err := loadRegistry()
			if err != nil {
				return err
			}
			return renderPackList(cmd.OutOrStdout(), registry)
		},
	}
}

func renderPackList(w io.Writer, registry *pack.Registry) error {
	if _, err := fmt.Fprintln(w, "Available word packs:"); err != nil {
		return err
	}
	for _, p := range registry.List() {
		if _, err := fmt.Fprintf(w, "- %s: %s\n", p.Name, p.Description); err != nil {
			return err
		}
	}
	return nil
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(_ *cobra.Command, _ []string) error {
	path := config.DefaultConfigPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat config: %w", err)
		}
		if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return fmt.Errorf("editor command is empty")
	}
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# koalatype configuration
# Uncomment a value to enable it. CLI flags override config values.

[practice]
# pack = %q          # Word pack (see: koalatype --list)
# words = %d         # Number of words to generate
# duration = %d      # Time limit in seconds (0 disables)
`,
		defaultPack,
		defaultWords,
		defaultDuration,
	)
}

func validateConfig(cfg model.Config) error {
	if cfg.Pack == "" {
		return fmt.Errorf("--pack must not be empty")
	}
	if cfg.Words <= 0 {
		return fmt.Errorf("--words must be > 0")
	}
	if cfg.Duration < 0 {
		return fmt.Errorf("--duration must be >= 0")
	}
	return nil
}

var (
	resultHeaderStyle = lipgloss.NewStyle().Bold(true)
	resultLabelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
)

func printResult(res score.Result) {
	styled := term.IsTerminal(int(os.Stdout.Fd()))
	header := "Results:"
	lines := []string{
		fmt.Sprintf("- WPM: %.1f", res.WPM),
		fmt.Sprintf("- Accuracy: %.1f%%", res.Accuracy),
		fmt.Sprintf("- Correct characters: %d/%d", res.CorrectChars, res.TotalChars),
		fmt.Sprintf("- Time: %.1fs", res.Elapsed.Seconds()),
	}
	if styled {
		header = resultHeaderStyle.Render(header)
		for i, line := range lines {
			lines[i] = resultLabelStyle.Render(line)
		}
	}
	fmt.Println(header)
	for _, line := range lines {
		fmt.Println(line)
	}
}

func applyStringConfig(cmd *cobra.Command, name string, target, value *string) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyIntConfig(cmd *cobra.Command, name string, target, value *int) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}
