// Package tui provides the interactive Bubble Tea wishlist board.
package tui

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/theirongolddev/wishsplit/internal/cli"
	"github.com/theirongolddev/wishsplit/internal/config"
	"github.com/theirongolddev/wishsplit/internal/engine"
	"github.com/theirongolddev/wishsplit/internal/history"
	"github.com/theirongolddev/wishsplit/internal/model"
	"github.com/theirongolddev/wishsplit/internal/store"
	"github.com/theirongolddev/wishsplit/internal/tui/theme"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
)

// inputKind says what the active text input is collecting.
type inputKind int

const (
	inputNone inputKind = iota
	inputBudget
	inputFund
	inputWithdraw
	inputWishName
	inputWishCost
	inputCategoryName
	inputCategoryPercent
	inputSetCost
	inputSetPercent
)

const (
	minTerminalWidth = 60
	cardWidth        = 32
	barWidth         = 24
)

// App is the root Bubble Tea model.
type App struct {
	st  *store.Store
	cfg config.Config
	wl  *model.Wishlist

	width  int
	height int

	showHelp bool

	// Cursor: selected category column and wish row within it
	catIdx  int
	wishIdx int

	// Pending distribution state (the PendingPreview phase)
	pending    bool
	lastResult engine.Result

	// Active text input
	inputKind   inputKind
	input       textinput.Model
	stagedName  string // first step of the two-step add flows
	status      string

	// First-run setup (huh form)
	needSetup bool
	setupForm *huh.Form
	setupVals setupValues
}

type setupValues struct {
	dataDir   string
	currency  string
	themeName string
}

// NewApp creates the board model, loading the wishlist synchronously — the
// data file is a single small document, there is nothing to stream.
func NewApp(dataDir string, cfg config.Config) App {
	st := store.New(dataDir)

	a := App{
		st:  st,
		cfg: cfg,
		wl:  st.LoadOrDefault(),
	}

	if !config.Exists() {
		a.needSetup = true
		a.setupVals = setupValues{
			dataDir:   dataDir,
			currency:  cfg.General.Currency,
			themeName: cfg.Appearance.Theme,
		}
		a.setupForm = newSetupForm(&a.setupVals)
	}

	return a
}

func newSetupForm(v *setupValues) *huh.Form {
	themeNames := make([]string, len(theme.All))
	for i, t := range theme.All {
		themeNames[i] = t.Name
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Data directory").
				Description("Where the wishlist file lives").
				Value(&v.dataDir),
			huh.NewInput().
				Title("Currency symbol").
				Description("Shown after amounts").
				Value(&v.currency),
			huh.NewSelect[string]().
				Title("Color theme").
				Options(huh.NewOptions(themeNames...)...).
				Value(&v.themeName),
		),
	)
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	if a.setupForm != nil {
		return a.setupForm.Init()
	}
	return nil
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		if a.setupForm != nil {
			a.setupForm = a.setupForm.WithWidth(msg.Width).WithHeight(msg.Height)
		}
		return a, nil

	case tea.KeyMsg:
		key := msg.String()

		if key == "ctrl+c" {
			a.save()
			return a, tea.Quit
		}

		if a.needSetup && a.setupForm != nil {
			return a.updateSetupForm(msg)
		}

		if a.inputKind != inputNone {
			return a.updateInput(msg)
		}

		if a.showHelp {
			a.showHelp = false
			return a, nil
		}

		return a.updateNormal(key)
	}

	// Forward unhandled messages so cursors keep blinking.
	if a.needSetup && a.setupForm != nil {
		return a.updateSetupForm(msg)
	}
	if a.inputKind != inputNone {
		var cmd tea.Cmd
		a.input, cmd = a.input.Update(msg)
		return a, cmd
	}

	return a, nil
}

func (a App) updateSetupForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := a.setupForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.setupForm = f
	}

	if a.setupForm.State == huh.StateCompleted {
		a.applySetup()
		a.needSetup = false
		a.setupForm = nil
		return a, nil
	}

	if a.setupForm.State == huh.StateAborted {
		a.needSetup = false
		a.setupForm = nil
		return a, nil
	}

	return a, cmd
}

// applySetup persists the first-run choices and reopens the store if the
// data directory changed. Config save is best-effort.
func (a *App) applySetup() {
	v := a.setupVals
	if v.dataDir != "" && v.dataDir != filepath.Dir(a.st.Path()) {
		a.cfg.General.DataDir = v.dataDir
		a.st = store.New(v.dataDir)
		a.wl = a.st.LoadOrDefault()
	}
	if v.currency != "" {
		a.cfg.General.Currency = v.currency
	}
	a.cfg.Appearance.Theme = v.themeName
	theme.SetActive(v.themeName)

	_ = config.Save(a.cfg)
}

func (a App) updateNormal(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "q":
		a.save()
		return a, tea.Quit

	case "?":
		a.showHelp = true
		return a, nil

	case "h", "left":
		if a.catIdx > 0 {
			a.catIdx--
			a.wishIdx = 0
		}
		return a, nil

	case "l", "right":
		if a.catIdx < len(a.wl.Categories)-1 {
			a.catIdx++
			a.wishIdx = 0
		}
		return a, nil

	case "j", "down":
		if c := a.selectedCategory(); c != nil && a.wishIdx < len(c.Wishes)-1 {
			a.wishIdx++
		}
		return a, nil

	case "k", "up":
		if a.wishIdx > 0 {
			a.wishIdx--
		}
		return a, nil

	case "b", "d":
		prefill := ""
		if a.cfg.Budget.DefaultAmount != nil {
			prefill = strconv.FormatInt(*a.cfg.Budget.DefaultAmount, 10)
		}
		return a.startInput(inputBudget, "Budget to distribute", prefill)

	case "enter":
		if a.pending {
			a.commitPending()
		}
		return a, nil

	case "esc":
		if a.pending {
			engine.Reset(a.wl)
			a.pending = false
			a.status = "Preview discarded"
		}
		return a, nil

	case "+":
		if a.selectedWish() != nil {
			return a.startInput(inputFund, "Amount to add", "")
		}
		return a, nil

	case "-":
		if a.selectedWish() != nil {
			return a.startInput(inputWithdraw, "Amount to remove", "")
		}
		return a, nil

	case "a":
		if a.selectedCategory() != nil {
			return a.startInput(inputWishName, "New wish name", "")
		}
		return a, nil

	case "A":
		return a.startInput(inputCategoryName, "New category name", "")

	case "c":
		if w := a.selectedWish(); w != nil {
			return a.startInput(inputSetCost, "New cost", strconv.FormatInt(w.Cost, 10))
		}
		return a, nil

	case "p":
		if c := a.selectedCategory(); c != nil {
			return a.startInput(inputSetPercent, "Category percent",
				strconv.FormatFloat(c.Percent, 'f', -1, 64))
		}
		return a, nil

	case "x":
		if w := a.selectedWish(); w != nil {
			c := a.selectedCategory()
			c.RemoveWish(w.ID)
			if a.wishIdx >= len(c.Wishes) && a.wishIdx > 0 {
				a.wishIdx--
			}
			a.save()
			a.status = fmt.Sprintf("Removed %q", w.Name)
		}
		return a, nil

	case "X":
		if c := a.selectedCategory(); c != nil {
			a.wl.RemoveCategory(c.ID)
			if a.catIdx >= len(a.wl.Categories) && a.catIdx > 0 {
				a.catIdx--
			}
			a.wishIdx = 0
			a.save()
			a.status = fmt.Sprintf("Removed category %q", c.Name)
		}
		return a, nil
	}

	return a, nil
}

func (a App) startInput(kind inputKind, prompt, prefill string) (tea.Model, tea.Cmd) {
	ti := textinput.New()
	ti.Placeholder = prompt
	ti.CharLimit = 64
	ti.Width = 30
	ti.SetValue(prefill)
	ti.Focus()

	a.inputKind = kind
	a.input = ti
	a.status = ""
	return a, textinput.Blink
}

func (a App) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		a.inputKind = inputNone
		a.stagedName = ""
		return a, nil
	case "enter":
		return a.submitInput(strings.TrimSpace(a.input.Value()))
	}

	var cmd tea.Cmd
	a.input, cmd = a.input.Update(msg)
	return a, cmd
}

// submitInput applies the value collected by the active input. Two-step
// flows (add wish, add category) chain into a second input.
func (a App) submitInput(value string) (tea.Model, tea.Cmd) {
	kind := a.inputKind
	a.inputKind = inputNone

	switch kind {
	case inputBudget:
		amount, err := parseMoney(value)
		if err != nil {
			a.status = err.Error()
			return a, nil
		}
		res, err := engine.Distribute(a.wl, amount)
		if err != nil {
			a.pending = false
			a.status = err.Error()
			return a, nil
		}
		a.pending = true
		a.lastResult = res
		a.status = fmt.Sprintf("Preview ready: %s placed", a.money(amount-res.Unallocated))

	case inputFund, inputWithdraw:
		amount, err := parseMoney(value)
		if err != nil || amount <= 0 {
			a.status = "Not a valid amount"
			return a, nil
		}
		if w := a.selectedWish(); w != nil {
			w.AdjustProgress(float64(amount), kind == inputFund)
			a.save()
			a.status = fmt.Sprintf("%s: %s", w.Name, cli.FormatProgress(w.Progress, w.Cost))
		}

	case inputWishName:
		if value == "" {
			a.status = "Name cannot be empty"
			return a, nil
		}
		a.stagedName = value
		return a.startInput(inputWishCost, "Wish cost", "")

	case inputWishCost:
		amount, err := parseMoney(value)
		if err != nil {
			a.status = err.Error()
			return a, nil
		}
		if c := a.selectedCategory(); c != nil {
			c.AddWish(model.NewWish(a.stagedName, float64(amount), 0))
			a.save()
			a.status = fmt.Sprintf("Added %q", a.stagedName)
		}
		a.stagedName = ""

	case inputCategoryName:
		if value == "" {
			a.status = "Name cannot be empty"
			return a, nil
		}
		a.stagedName = value
		return a.startInput(inputCategoryPercent, "Category percent", "10")

	case inputCategoryPercent:
		percent, err := parsePercentValue(value)
		if err != nil {
			a.status = err.Error()
			return a, nil
		}
		a.wl.AddCategory(a.stagedName, percent)
		a.catIdx = len(a.wl.Categories) - 1
		a.wishIdx = 0
		a.save()
		a.status = fmt.Sprintf("Added category %q", a.stagedName)
		a.stagedName = ""

	case inputSetCost:
		amount, err := parseMoney(value)
		if err != nil {
			a.status = err.Error()
			return a, nil
		}
		if w := a.selectedWish(); w != nil {
			w.SetCost(float64(amount))
			a.save()
			a.status = fmt.Sprintf("%s now costs %s", w.Name, a.money(w.Cost))
		}

	case inputSetPercent:
		percent, err := parsePercentValue(value)
		if err != nil {
			a.status = err.Error()
			return a, nil
		}
		if c := a.selectedCategory(); c != nil {
			c.Percent = percent
			a.save()
			a.status = fmt.Sprintf("%s weighs %s", c.Name, cli.FormatWeight(percent))
		}
	}

	return a, nil
}

// commitPending promotes the preview to committed state, persists it, and
// records the distribution in the history ledger.
func (a *App) commitPending() {
	engine.Commit(a.wl)
	a.pending = false
	a.save()

	ledgerPath := filepath.Join(filepath.Dir(a.st.Path()), history.LedgerFileName)
	if ledger, err := history.Open(ledgerPath); err == nil {
		_ = ledger.RecordCommit(a.lastResult, time.Now())
		_ = ledger.Close()
	}

	a.status = fmt.Sprintf("Applied %s", a.money(a.lastResult.Budget-a.lastResult.Unallocated))
}

func (a *App) save() {
	if err := a.st.Save(a.wl); err != nil {
		a.status = fmt.Sprintf("Save failed: %v", err)
	}
}

func (a App) selectedCategory() *model.Category {
	if a.catIdx < 0 || a.catIdx >= len(a.wl.Categories) {
		return nil
	}
	return a.wl.Categories[a.catIdx]
}

func (a App) selectedWish() *model.Wish {
	c := a.selectedCategory()
	if c == nil {
		return nil
	}
	sorted := c.SortedWishes()
	if a.wishIdx < 0 || a.wishIdx >= len(sorted) {
		return nil
	}
	return sorted[a.wishIdx]
}

func (a App) money(v model.Money) string {
	return cli.FormatMoney(v, a.cfg.General.Currency)
}

func parseMoney(s string) (model.Money, error) {
	s = strings.TrimSpace(strings.ReplaceAll(s, ",", "."))
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("not a valid amount")
	}
	if v < 0 {
		return 0, fmt.Errorf("amount must not be negative")
	}
	return model.RoundMoney(v), nil
}

func parsePercentValue(s string) (float64, error) {
	s = strings.TrimSpace(strings.TrimSuffix(strings.ReplaceAll(s, ",", "."), "%"))
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v < 0 || v > 100 {
		return 0, fmt.Errorf("percent must be between 0 and 100")
	}
	return v, nil
}
