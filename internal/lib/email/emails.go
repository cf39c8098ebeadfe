package email

func (c *Client) SendBookingConfirmation(to, name, serviceName, bookingDate, bookingTime string) error {
	data := map[string]string{
		"Name":        name,
		"ServiceName": serviceName,
		"BookingDate": bookingDate,
		"BookingTime": bookingTime,
	}

	return c.SendEmail(
		to,
		"Your HomeEase booking is in",
		TemplateBookingConfirmation,
		data,
	)
}

func (c *Client) SendSupportAck(to, name string) error {
	data := map[string]string{
		"Name": name,
	}

	return c.SendEmail(
		to,
		"We received your support request",
		TemplateSupportAck,
		data,
	)
}
