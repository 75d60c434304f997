package tui

import (
	"fmt"
	"strings"

	"tour-booking/internal/module/booking/controller"
	"tour-booking/internal/module/booking/models/entity"
	"tour-booking/internal/pkg/helpers"
	"tour-booking/internal/pkg/i18n"

	"github.com/charmbracelet/lipgloss"
	"github.com/skip2/go-qrcode"
)

// FormFields are the rendered values of the editable form fields.
type FormFields struct {
	Name  string
	Email string
	Notes string
	Focus int
}

// RenderTourList draws the browsing view. cursor is the highlighted tour.
func RenderTourList(theme Theme, lang string, state controller.State, cursor int) string {
	var b strings.Builder
	b.WriteString(theme.header().Render(i18n.T(lang, "title")))
	b.WriteString("\n")
	fmt.Fprintf(&b, "%s: %s\n\n", i18n.T(lang, "selectDateLabel"), state.Date)

	switch {
	case state.Loading:
		b.WriteString(theme.faint().Render(i18n.T(lang, "loading")))
		b.WriteString("\n")
		return b.String()
	case state.ListError != "":
		b.WriteString(lipgloss.NewStyle().Foreground(theme.ErrorText).Render(state.ListError))
		b.WriteString("\n")
		return b.String()
	case len(state.Tours) == 0:
		b.WriteString(i18n.T(lang, "noTours"))
		b.WriteString("\n")
		return b.String()
	}

	for i, t := range state.Tours {
		b.WriteString(renderTourRow(theme, lang, t, i == cursor))
		b.WriteString("\n")
	}
	return b.String()
}

func renderTourRow(theme Theme, lang string, t entity.TourInstance, active bool) string {
	name := i18n.TourName(lang, string(t.TourType), t.DisplayName)

	seats := i18n.T(lang, "soldOut")
	if t.Bookable() {
		seats = fmt.Sprintf("%d %s", t.SeatsRemaining, i18n.T(lang, "spotsLeft"))
	}

	line := fmt.Sprintf("%-36s %s: %-4s %12s  %s", name, i18n.T(lang, "duration"), t.DurationLabel, helpers.FormatBRL(t.PricePerPerson), seats)
	switch {
	case active && t.Bookable():
		return theme.selected().Render(line)
	case !t.Bookable():
		return theme.faint().Render(line)
	default:
		return line
	}
}

// RenderForm draws the guest form for the selected tour, including the
// Submitting phase where inputs are locked.
func RenderForm(theme Theme, lang string, state controller.State, fields FormFields) string {
	if state.Selected == nil {
		return ""
	}
	sel := state.Selected
	name := i18n.TourName(lang, string(sel.TourType), sel.DisplayName)

	var b strings.Builder
	b.WriteString(theme.header().Render(fmt.Sprintf("%s %s", i18n.T(lang, "bookTitle"), name)))
	b.WriteString("\n")
	fmt.Fprintf(&b, "%s: %s   %s: %s\n\n", i18n.T(lang, "labelDate"), state.Date, i18n.T(lang, "labelPrice"), helpers.FormatBRL(sel.PricePerPerson))

	rows := []struct {
		label string
		value string
	}{
		{i18n.T(lang, "labelName"), fields.Name},
		{i18n.T(lang, "labelEmail"), fields.Email},
		{i18n.T(lang, "labelPeople"), fmt.Sprintf("%d", state.Form.NumPeople)},
		{i18n.T(lang, "labelNotes"), fields.Notes},
	}
	for i, row := range rows {
		marker := "  "
		if i == fields.Focus && state.InputEnabled() {
			marker = "› "
		}
		fmt.Fprintf(&b, "%s%-28s %s\n", marker, row.label, row.value)
	}

	fmt.Fprintf(&b, "\n%s: %s\n", i18n.T(lang, "labelTotal"), helpers.FormatBRL(state.Total()))

	if state.Message != "" {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.ErrorText).Render(state.Message))
		b.WriteString("\n")
	}

	confirm := i18n.T(lang, "btnConfirm")
	if state.Phase == controller.PhaseSubmitting {
		confirm = i18n.T(lang, "btnSubmitting")
	}
	fmt.Fprintf(&b, "\n[ %s ]  [ %s ]\n", confirm, i18n.T(lang, "btnCancel"))
	return theme.box().Render(b.String())
}

// RenderPayment shows the Pix QR code and copy-paste code while the
// booking waits for payment.
func RenderPayment(theme Theme, lang string, state controller.State) string {
	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Bold(true).Foreground(theme.SuccessText).Render(i18n.T(lang, "paymentTitle")))
	b.WriteString("\n")
	b.WriteString(i18n.T(lang, "paymentInstruction"))
	b.WriteString("\n\n")

	if state.Payment != nil {
		if code := state.Payment.PixCopyPasteCode; code != "" {
			if qr, err := qrcode.New(code, qrcode.Medium); err == nil {
				b.WriteString(qr.ToSmallString(false))
			}
			fmt.Fprintf(&b, "%s: %s\n", i18n.T(lang, "labelTotal"), helpers.FormatBRL(state.Payment.Amount))
			fmt.Fprintf(&b, "%s:\n%s\n\n", i18n.T(lang, "labelPixString"), code)
		}
	}

	b.WriteString(theme.faint().Render(i18n.T(lang, "paymentWaiting")))
	b.WriteString("\n")
	fmt.Fprintf(&b, "\n[ %s ]\n", i18n.T(lang, "btnClose"))
	return b.String()
}

func RenderSuccess(theme Theme, lang string, state controller.State) string {
	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Bold(true).Foreground(theme.SuccessText).Render(i18n.T(lang, "successTitle")))
	b.WriteString("\n")
	fmt.Fprintf(&b, "%s %s\n", i18n.T(lang, "successMessage"), state.ConfirmedEmail)
	fmt.Fprintf(&b, "\n[ %s ]\n", i18n.T(lang, "btnDone"))
	return theme.box().Render(b.String())
}
