package console

import (
	"context"
	"io"

	"github.com/flexprice/vanrental/internal/domain/pricing"
	ierr "github.com/flexprice/vanrental/internal/errors"
	"github.com/flexprice/vanrental/internal/logger"
	"github.com/flexprice/vanrental/internal/report"
	"github.com/flexprice/vanrental/internal/service"
)

type MenuOption int

const (
	MenuExit MenuOption = iota
	MenuAddRental
	MenuCustomerReceipt
	MenuCompanySummary
	MenuReferenceSummary
	MenuExportCSV

	maxMenuOption = MenuExportCSV
)

func (o MenuOption) IsValid() bool {
	return o >= MenuExit && o <= maxMenuOption
}

type menuEntry struct {
	option MenuOption
	label  string
}

// menuEntries are printed in this order, exit last
var menuEntries = []menuEntry{
	{MenuAddRental, "1 - Add rental vehicle summary"},
	{MenuCustomerReceipt, "2 - Print customer receipt"},
	{MenuCompanySummary, "3 - Print company daily summary"},
	{MenuReferenceSummary, "4 - Print reference daily summary"},
	{MenuExportCSV, "5 - Export daily summary (CSV)"},
	{MenuExit, "0 - Exit"},
}

// App drives one rental desk session
type App struct {
	prompter *Prompter
	svc      service.RentalService
	renderer *report.Renderer
	logger   *logger.Logger
}

func NewApp(prompter *Prompter, svc service.RentalService, renderer *report.Renderer, log *logger.Logger) *App {
	return &App{
		prompter: prompter,
		svc:      svc,
		renderer: renderer,
		logger:   log,
	}
}

// Run shows the menu until the user exits or input ends
func (a *App) Run(ctx context.Context) error {
	a.prompter.Banner()

	for {
		a.prompter.Menu()
		choice, err := a.prompter.MenuChoice()
		if err != nil {
			return a.finish(err)
		}

		if choice == MenuExit {
			a.prompter.Println("Goodbye!")
			return nil
		}

		if err := a.handle(ctx, choice); err != nil {
			if err == io.EOF {
				return a.finish(err)
			}
			a.logger.WithContext(ctx).Debugw("menu action failed", "option", int(choice), "error", err)
			a.prompter.Error(displayMessage(err))
		}
		a.prompter.Println()
	}
}

func (a *App) handle(ctx context.Context, choice MenuOption) error {
	switch choice {
	case MenuAddRental:
		return a.addRental(ctx)
	case MenuCustomerReceipt:
		return a.printReceipt(ctx)
	case MenuCompanySummary:
		return a.printSummary(ctx)
	case MenuReferenceSummary:
		a.printCompanySummary(a.svc.GetReferenceSummary(ctx))
		return nil
	case MenuExportCSV:
		return a.exportCSV(ctx)
	}
	return nil
}

func (a *App) addRental(ctx context.Context) error {
	req, err := a.prompter.PromptForRental()
	if err != nil {
		return err
	}

	resp, err := a.svc.AddRental(ctx, req)
	if err != nil {
		return err
	}

	a.prompter.Printf("Rental added successfully. Total rentals: %d\n", resp.Position)
	return nil
}

func (a *App) printReceipt(ctx context.Context) error {
	rentals, err := a.svc.ListRentals(ctx)
	if err != nil {
		return err
	}
	if len(rentals) == 0 {
		a.prompter.Error(service.NoRentalsMessage)
		return nil
	}

	position, err := a.prompter.SelectRental(rentals)
	if err != nil {
		return err
	}

	b, err := a.svc.GetReceipt(ctx, position)
	if err != nil {
		return err
	}

	a.prompter.Println()
	a.prompter.Println(a.renderer.CustomerReceipt(b))
	return nil
}

func (a *App) printSummary(ctx context.Context) error {
	summary, err := a.svc.GetDailySummary(ctx)
	if err != nil {
		return err
	}
	a.printCompanySummary(summary)
	return nil
}

func (a *App) printCompanySummary(summary *pricing.DailySummary) {
	a.prompter.Println()
	a.prompter.Println(a.renderer.CompanySummary(summary))
}

func (a *App) exportCSV(ctx context.Context) error {
	summary, err := a.svc.GetDailySummary(ctx)
	if err != nil {
		return err
	}

	data, err := report.SummaryCSV(summary)
	if err != nil {
		return err
	}

	a.prompter.Println()
	a.prompter.Printf("%s", data)
	return nil
}

// finish ends the session quietly when input runs out
func (a *App) finish(err error) error {
	if err == io.EOF {
		a.prompter.Println()
		a.prompter.Println("Goodbye!")
		return nil
	}
	return ierr.WithError(err).
		WithHint("Failed to read input").
		Mark(ierr.ErrInternal)
}

// displayMessage prefers the user-facing hints attached to err
func displayMessage(err error) string {
	hints := ierr.GetHints(err)
	if len(hints) == 0 {
		return err.Error()
	}
	return hints[0]
}
