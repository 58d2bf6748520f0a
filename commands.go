package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/mattn/go-isatty"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/pdxmph/contact-manager/internal/config"
	"github.com/pdxmph/contact-manager/internal/db"
	"github.com/pdxmph/contact-manager/internal/form"
	"github.com/pdxmph/contact-manager/internal/logging"
	"github.com/pdxmph/contact-manager/internal/store"
	"github.com/pdxmph/contact-manager/internal/tui"
)

type options struct {
	configPath string
	seedPath   string
	fixtures   bool
}

// app is everything a command needs once configuration is resolved
type app struct {
	cfg    *config.Config
	log    *logrus.Logger
	closer io.Closer
	store  *store.Store
}

func (a *app) Close() error {
	return a.closer.Close()
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:           "contact-manager",
		Short:         "Create, edit, search and delete contacts in the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(opts)
		},
	}

	root.PersistentFlags().StringVar(&opts.configPath, "config", "", "config file (default ~/.config/contact-manager/config.toml)")
	root.PersistentFlags().StringVar(&opts.seedPath, "seed", "", "SQLite seed database to load at startup")
	root.PersistentFlags().BoolVar(&opts.fixtures, "fixtures", false, "load built-in sample contacts")

	root.AddCommand(newListCmd(opts))
	root.AddCommand(newInitSeedCmd())

	return root
}

func newListCmd(opts *options) *cobra.Command {
	var search string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print contacts as a table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := bootstrap(opts)
			if err != nil {
				return err
			}
			defer a.Close()

			a.store.SetSearchTerm(search)
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(a.store.Filtered()))
			return nil
		},
	}

	cmd.Flags().StringVarP(&search, "search", "s", "", "only show contacts whose name or email contains this")
	return cmd
}

func newInitSeedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init-seed <path>",
		Short: "Create a SQLite seed database filled with sample contacts",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := config.ExpandPath(args[0])
			if err := db.CreateFixturesDatabase(path); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Seed database created at %s\n", path)
			return nil
		},
	}
}

// bootstrap loads configuration, sets up logging and fills the store
func bootstrap(opts *options) (*app, error) {
	var (
		cfg *config.Config
		err error
	)
	if opts.configPath != "" {
		cfg, err = config.LoadFrom(opts.configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	// Flags win over the config file
	if opts.seedPath != "" {
		cfg.Seed.Path = config.ExpandPath(opts.seedPath)
	}
	if opts.fixtures {
		cfg.Seed.Fixtures = true
	}

	logger, closer, err := logging.Setup(cfg.Log)
	if err != nil {
		return nil, err
	}

	a := &app{
		cfg:    cfg,
		log:    logger,
		closer: closer,
		store:  store.New(logger),
	}

	if cfg.Seed.Fixtures {
		n := db.LoadFixtures(a.store)
		logger.WithField("count", n).Info("fixtures loaded")
	}

	if cfg.Seed.Path != "" {
		if err := loadSeed(a.store, cfg.Seed.Path, logger); err != nil {
			a.Close()
			return nil, err
		}
	}

	return a, nil
}

func loadSeed(s *store.Store, path string, logger *logrus.Logger) error {
	database, err := db.Open(path, logger)
	if err != nil {
		return err
	}
	defer database.Close()

	if _, err := database.LoadInto(s); err != nil {
		return fmt.Errorf("loading seed contacts: %w", err)
	}
	return nil
}

func runTUI(opts *options) error {
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		return fmt.Errorf("stdout is not a terminal; use 'contact-manager list' instead")
	}

	a, err := bootstrap(opts)
	if err != nil {
		return err
	}
	defer a.Close()

	validator := form.NewValidator(a.cfg.Validation.RequireState)
	model := tui.New(a.store, validator, a.log)

	a.log.WithField("contacts", a.store.Len()).Info("starting ui")

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running ui: %w", err)
	}
	return nil
}

var headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
var cellStyle = lipgloss.NewStyle().Padding(0, 1)

// renderTable renders contacts the way the list view lays them out
func renderTable(contacts []store.Contact) string {
	if len(contacts) == 0 {
		return "No data available"
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("ID", "Name", "Contact", "Address", "Email").
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})

	for _, c := range contacts {
		contactNo := c.ContactNo
		if contactNo == "" {
			contactNo = "-"
		}
		t.Row(strconv.Itoa(c.ID), c.Name, contactNo, c.Address, c.Email)
	}

	return t.Render() + fmt.Sprintf("\n%d contact(s)", len(contacts))
}
