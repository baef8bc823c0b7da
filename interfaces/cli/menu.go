// Package cli provides the interactive menu surface for operating the
// service from a terminal.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"mentcare/application/commands"
	"mentcare/application/commands/bus"
	"mentcare/application/queries"
	querybus "mentcare/application/queries/bus"
	"mentcare/application/services"
)

// Menu drives the interactive loop. It reads one choice per iteration and
// keeps running until the user quits or input ends.
type Menu struct {
	commandBus    *bus.CommandBus
	queryBus      *querybus.QueryBus
	reportService *services.ReportService
	in            *bufio.Scanner
	out           io.Writer
}

// NewMenu creates a menu reading choices from in and writing to out
func NewMenu(
	commandBus *bus.CommandBus,
	queryBus *querybus.QueryBus,
	reportService *services.ReportService,
	in io.Reader,
	out io.Writer,
) *Menu {
	return &Menu{
		commandBus:    commandBus,
		queryBus:      queryBus,
		reportService: reportService,
		in:            bufio.NewScanner(in),
		out:           out,
	}
}

// Run executes the menu loop until quit or EOF
func (m *Menu) Run(ctx context.Context) error {
	for {
		m.printMenu()

		choice, ok := m.readLine()
		if !ok {
			return nil
		}

		switch strings.TrimSpace(choice) {
		case "1":
			m.registerPatient(ctx)
		case "2":
			m.listPatients(ctx)
		case "3":
			m.produceReport(ctx)
		case "4":
			m.scheduleAppointment(ctx)
		case "5":
			m.sendReminders(ctx)
		case "q", "Q":
			fmt.Fprintln(m.out, "Bye.")
			return nil
		default:
			fmt.Fprintln(m.out, "Unknown choice.")
		}
	}
}

func (m *Menu) printMenu() {
	fmt.Fprintln(m.out)
	fmt.Fprintln(m.out, "--- Patient Care ---")
	fmt.Fprintln(m.out, "1) Register patient")
	fmt.Fprintln(m.out, "2) List patients")
	fmt.Fprintln(m.out, "3) Produce risk report")
	fmt.Fprintln(m.out, "4) Schedule appointment")
	fmt.Fprintln(m.out, "5) Send reminders")
	fmt.Fprintln(m.out, "q) Quit")
	fmt.Fprint(m.out, "> ")
}

func (m *Menu) registerPatient(ctx context.Context) {
	id, ok := m.prompt("Patient ID: ")
	if !ok {
		return
	}
	name, ok := m.prompt("Name: ")
	if !ok {
		return
	}
	birthDate, ok := m.prompt("Birth date (YYYY-MM-DD): ")
	if !ok {
		return
	}
	risk, ok := m.prompt("Risk (low/medium/high): ")
	if !ok {
		return
	}

	cmd := commands.RegisterPatientCommand{
		PatientID: id,
		Name:      name,
		BirthDate: birthDate,
		Risk:      risk,
	}
	if err := m.commandBus.Send(ctx, cmd); err != nil {
		fmt.Fprintf(m.out, "Error: %v\n", err)
		return
	}
	fmt.Fprintf(m.out, "Registered %s.\n", id)
}

func (m *Menu) listPatients(ctx context.Context) {
	result, err := m.queryBus.Ask(ctx, queries.ListPatientsQuery{})
	if err != nil {
		fmt.Fprintf(m.out, "Error: %v\n", err)
		return
	}

	list, ok := result.(*queries.PatientListView)
	if !ok {
		fmt.Fprintln(m.out, "Error: unexpected result")
		return
	}

	if list.Total == 0 {
		fmt.Fprintln(m.out, "No patients.")
		return
	}
	for _, p := range list.Patients {
		fmt.Fprintf(m.out, "%s  %-25s %s  %s\n", p.ID, p.Name, p.BirthDate, p.Risk)
	}
}

func (m *Menu) produceReport(ctx context.Context) {
	census, err := m.reportService.ProduceReport(ctx)
	if err != nil {
		fmt.Fprintf(m.out, "Error: %v\n", err)
		return
	}
	fmt.Fprintf(m.out, "count=%d high=%d medium=%d low=%d\n",
		census.Count, census.High, census.Medium, census.Low)
}

func (m *Menu) scheduleAppointment(ctx context.Context) {
	id, ok := m.prompt("Patient ID: ")
	if !ok {
		return
	}
	whenRaw, ok := m.prompt("When (RFC3339, e.g. 2026-09-01T10:00:00Z): ")
	if !ok {
		return
	}
	reason, ok := m.prompt("Reason: ")
	if !ok {
		return
	}

	when, err := time.Parse(time.RFC3339, strings.TrimSpace(whenRaw))
	if err != nil {
		fmt.Fprintln(m.out, "Error: bad time format.")
		return
	}

	cmd := commands.ScheduleAppointmentCommand{
		PatientID: id,
		When:      when,
		Reason:    reason,
	}
	if err := m.commandBus.Send(ctx, cmd); err != nil {
		fmt.Fprintf(m.out, "Error: %v\n", err)
		return
	}
	fmt.Fprintln(m.out, "Scheduled.")
}

func (m *Menu) sendReminders(ctx context.Context) {
	if err := m.commandBus.Send(ctx, commands.SendRemindersCommand{}); err != nil {
		fmt.Fprintf(m.out, "Error: %v\n", err)
		return
	}
	fmt.Fprintln(m.out, "Reminders sent.")
}

func (m *Menu) prompt(label string) (string, bool) {
	fmt.Fprint(m.out, label)
	return m.readLine()
}

func (m *Menu) readLine() (string, bool) {
	if !m.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(m.in.Text()), true
}
