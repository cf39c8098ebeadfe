package email

// Template names one of the html files under templates/emails.
type Template string

const (
	TemplateBookingConfirmation Template = "booking_confirmation"
	TemplateSupportAck          Template = "support_ack"
)
