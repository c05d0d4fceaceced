// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package dashboard

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/muesli/termenv"

	"github.com/tenantflow/tenantflow/internal/types"
	"github.com/tenantflow/tenantflow/pkg/bootstrap"
)

const notAvailable = "N/A"

// Renderer writes dashboards as text
type Renderer struct {
	out io.Writer

	title   lipgloss.Style
	heading lipgloss.Style
	muted   lipgloss.Style
	status  map[string]lipgloss.Style
}

func money(v float64) string {
	return "$" + humanize.FormatFloat("#,###.##", v)
}

func date(t time.Time) string {
	if t.IsZero() {
		return notAvailable
	}

	return t.Format(time.DateOnly)
}

func orNA(s string) string {
	if strings.TrimSpace(s) == "" {
		return notAvailable
	}

	return s
}

func (r *Renderer) styleStatus(status string) string {
	if st, ok := r.status[status]; ok {
		return st.Render(status)
	}

	return status
}

func (r *Renderer) section(name string) {
	fmt.Fprintln(r.out)
	fmt.Fprintln(r.out, r.heading.Render(name))
}

func (r *Renderer) table(header string, rows [][]string) {
	tw := tabwriter.NewWriter(r.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, header)
	for _, row := range rows {
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}
	tw.Flush()
}

func (r *Renderer) empty(msg string) {
	fmt.Fprintln(r.out, r.muted.Render(msg))
}

// View writes what the router settled on for the states that need no data
func (r *Renderer) View(v bootstrap.View) {
	switch v.Phase {
	case bootstrap.PhaseInitializing:
		r.empty(v.Placeholder)
	case bootstrap.PhaseRedirecting:
		r.empty("Redirecting to login...")
	case bootstrap.PhaseLoggedOut:
		r.empty("Signed out. Run `tenantflow login` to sign in.")
	}
}

func propertyName(h *types.HouseSummary, unit string) string {
	name := notAvailable
	if h != nil {
		name = h.Name
	}
	if unit != "" {
		name += " (" + unit + ")"
	}

	return name
}

func tenantName(p *types.PersonSummary) string {
	if p == nil {
		return notAvailable
	}

	return orNA(p.Name)
}

// Landlord writes the selected tab of the landlord dashboard
func (r *Renderer) Landlord(profile *types.Profile, v *LandlordView) {
	fmt.Fprintln(r.out, r.title.Render("Landlord Dashboard"))
	if profile != nil {
		fmt.Fprintln(r.out, r.muted.Render(fmt.Sprintf("%s <%s>", profile.Name, profile.Email)))
	}

	switch v.Tab {
	case TabHouses:
		r.houses(v.Bundle.Houses)
	case TabTenants:
		r.tenants(v.Tenants)
	case TabLeases:
		r.leases(v.Bundle.Leases)
	case TabPayments:
		r.payments(v.Payments, v.Bundle.Leases)
	case TabMaintenance:
		r.maintenance(v.Requests)
	}
}

func (r *Renderer) houses(houses []*types.House) {
	r.section("My Properties")
	if len(houses) == 0 {
		r.empty("No properties yet.")
		return
	}

	rows := make([][]string, 0, len(houses))
	for _, h := range houses {
		size := notAvailable
		switch {
		case h.Type == types.HouseTypeMultiUnit:
			size = fmt.Sprintf("%d units", len(h.Units))
		case h.Rooms != nil:
			size = fmt.Sprintf("%d rooms", *h.Rooms)
		}
		rows = append(rows, []string{h.Name, h.Address, orNA(h.Type), size})
	}

	r.table("NAME\tADDRESS\tTYPE\tSIZE", rows)
}

func (r *Renderer) tenants(tenants []*types.Profile) {
	r.section("My Tenants")
	if len(tenants) == 0 {
		r.empty("No tenants yet.")
		return
	}

	rows := make([][]string, 0, len(tenants))
	for _, t := range tenants {
		rows = append(rows, []string{t.Name, t.Email, orNA(t.Phone)})
	}

	r.table("NAME\tEMAIL\tPHONE", rows)
}

func (r *Renderer) leases(leases []*types.Lease) {
	r.section("Leases")
	if len(leases) == 0 {
		r.empty("No leases yet.")
		return
	}

	rows := make([][]string, 0, len(leases))
	for _, l := range leases {
		rows = append(rows, []string{
			tenantName(l.Tenant),
			propertyName(l.House, l.RoomOrUnitID),
			money(l.RentAmount),
			date(l.LeaseStartDate) + " to " + date(l.LeaseEndDate),
			r.styleStatus(l.Status),
		})
	}

	r.table("TENANT\tPROPERTY (UNIT)\tRENT\tTERM\tSTATUS", rows)
}

func (r *Renderer) payments(payments []*types.Payment, leases []*types.Lease) {
	r.section("Payment Requests")
	if len(payments) == 0 {
		r.empty("No payment records found.")
		return
	}

	byID := make(map[string]*types.Lease, len(leases))
	for _, l := range leases {
		byID[l.ID] = l
	}

	rows := make([][]string, 0, len(payments))
	for _, p := range payments {
		tenant, property := notAvailable, notAvailable
		if l, ok := byID[p.LeaseID]; ok {
			tenant = tenantName(l.Tenant)
			property = propertyName(l.House, l.RoomOrUnitID)
		}

		rows = append(rows, []string{
			p.ID,
			date(p.PaymentDate),
			tenant,
			property,
			money(p.Amount),
			orNA(p.Method),
			r.styleStatus(p.Status),
		})
	}

	r.table("ID\tDATE\tTENANT\tPROPERTY (UNIT)\tAMOUNT\tMETHOD\tSTATUS", rows)
}

func (r *Renderer) maintenance(requests []*types.MaintenanceRequest) {
	r.section("Maintenance Requests")
	if len(requests) == 0 {
		r.empty("No maintenance requests.")
		return
	}

	rows := make([][]string, 0, len(requests))
	for _, m := range requests {
		rows = append(rows, []string{
			m.ID,
			date(m.SubmittedDate),
			propertyName(m.House, m.RoomOrUnitID),
			tenantName(m.Tenant),
			m.Description,
			orNA(m.Priority),
			r.styleStatus(m.Status),
		})
	}

	r.table("ID\tSUBMITTED\tPROPERTY (UNIT)\tTENANT\tDESCRIPTION\tPRIORITY\tSTATUS", rows)
}

// Tenant writes the tenant dashboard
func (r *Renderer) Tenant(profile *types.Profile, v *TenantView) {
	fmt.Fprintln(r.out, r.title.Render("Tenant Dashboard"))
	if profile != nil {
		fmt.Fprintln(r.out, r.muted.Render(fmt.Sprintf("%s <%s>", profile.Name, profile.Email)))
	}

	r.section("My Active Lease(s)")
	if len(v.Leases) == 0 {
		r.empty("No active leases found.")
	}
	for _, l := range v.Leases {
		address := notAvailable
		if l.House != nil {
			address = orNA(l.House.Address)
		}

		unit := l.RoomOrUnitID
		if unit == "" {
			unit = notAvailable
		}

		name := notAvailable
		if l.House != nil {
			name = l.House.Name
		}

		fmt.Fprintf(r.out, "Property:    %s (Unit/Room: %s)\n", name, unit)
		fmt.Fprintf(r.out, "Address:     %s\n", address)
		fmt.Fprintf(r.out, "Rent:        %s/month\n", money(l.RentAmount))
		fmt.Fprintf(r.out, "Lease Term:  %s to %s\n", date(l.LeaseStartDate), date(l.LeaseEndDate))
	}

	r.section("Maintenance Requests")
	if len(v.Requests) == 0 {
		r.empty("No maintenance requests submitted.")
		return
	}

	for _, m := range v.Requests {
		fmt.Fprintln(r.out, m.Description)
		fmt.Fprintf(r.out, "  Submitted: %s | Priority: %s | Status: %s\n", date(m.SubmittedDate), orNA(m.Priority), r.styleStatus(m.Status))
	}
}

// NewRenderer writes to out, plain drops colors and text attributes even on a
// terminal
func NewRenderer(out io.Writer, plain bool) *Renderer {
	opts := []termenv.OutputOption{}
	if plain {
		opts = append(opts, termenv.WithProfile(termenv.Ascii))
	}

	lr := lipgloss.NewRenderer(out, opts...)
	if plain {
		lr.SetColorProfile(termenv.Ascii)
	}

	red := lr.NewStyle().Foreground(lipgloss.Color("1"))
	yellow := lr.NewStyle().Foreground(lipgloss.Color("3"))
	green := lr.NewStyle().Foreground(lipgloss.Color("2"))

	return &Renderer{
		out:     out,
		title:   lr.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		heading: lr.NewStyle().Bold(true).Underline(true),
		muted:   lr.NewStyle().Foreground(lipgloss.Color("8")),
		status: map[string]lipgloss.Style{
			types.MaintenanceStatusOpen:       red,
			types.MaintenanceStatusInProgress: yellow,
			types.MaintenanceStatusResolved:   green,
			types.MaintenanceStatusClosed:     green,
			types.PaymentStatusPending:        yellow,
			types.PaymentStatusApproved:       green,
			types.PaymentStatusRejected:       red,
			types.LeaseStatusActive:           green,
			types.LeaseStatusCancelled:        red,
		},
	}
}
