package commands

// SendRemindersCommand triggers reminder delivery for every appointment
// inside the reminder window. It carries no payload; the window comes from
// domain configuration.
type SendRemindersCommand struct{}

// Validate validates the command
func (cmd SendRemindersCommand) Validate() error {
	return nil
}
