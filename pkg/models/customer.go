package models

// Customer is a server-owned customer record. ID is always issued by the server.
type Customer struct {
	ID                     string        `json:"id"`
	Email                  string        `json:"email"`
	FirstName              string        `json:"first_name"`
	LastName               string        `json:"last_name"`
	FullName               string        `json:"full_name,omitempty"`
	HomeAddress1           string        `json:"home_address_1"`
	HomeAddress2           string        `json:"home_address_2"`
	HomeCity               string        `json:"home_city"`
	HomeState              string        `json:"home_state"`
	HomeZip                string        `json:"home_zip"`
	HomePhone              string        `json:"home_phone"`
	MobilePhone            string        `json:"mobile_phone"`
	PreferredContactMethod ContactMethod `json:"preferred_contact_method"`
	PreferredContactTime   ContactTime   `json:"preferred_contact_time"`
	SubscribedToEmail      bool          `json:"subscribed_to_email"`
	SubscribedToSMS        bool          `json:"subscribed_to_sms"`
}

// DisplayName is the label shown in the customer list.
func (c Customer) DisplayName() string {
	if c.FullName != "" {
		return c.FullName
	}
	return c.FirstName
}

// CustomerInput is the argument set shared by addCustomer and editCustomer.
type CustomerInput struct {
	Email                  string
	FirstName              string
	LastName               string
	HomeAddress1           string
	HomeAddress2           string
	HomeCity               string
	HomeState              string
	HomeZip                string
	HomePhone              string
	MobilePhone            string
	PreferredContactMethod ContactMethod
	PreferredContactTime   ContactTime
	SubscribedToEmail      bool
	SubscribedToSMS        bool
}

// InputFromForm maps the collected form onto the addCustomer arguments.
func InputFromForm(f FormData) CustomerInput {
	return CustomerInput{
		Email:                  f.Email,
		FirstName:              f.FirstName,
		LastName:               f.LastName,
		HomeAddress1:           f.Address1,
		HomeAddress2:           f.Address2,
		HomeCity:               f.City,
		HomeState:              f.State,
		HomeZip:                f.Zip,
		HomePhone:              f.HomePhone,
		MobilePhone:            f.MobilePhone,
		PreferredContactMethod: f.PrefContactMethod,
		PreferredContactTime:   f.PrefContactTime,
		SubscribedToEmail:      f.EmailOptIn,
		SubscribedToSMS:        f.SMSOptIn,
	}
}

// InputFromCustomer maps an edited customer onto the editCustomer arguments.
func InputFromCustomer(c Customer) CustomerInput {
	return CustomerInput{
		Email:                  c.Email,
		FirstName:              c.FirstName,
		LastName:               c.LastName,
		HomeAddress1:           c.HomeAddress1,
		HomeAddress2:           c.HomeAddress2,
		HomeCity:               c.HomeCity,
		HomeState:              c.HomeState,
		HomeZip:                c.HomeZip,
		HomePhone:              c.HomePhone,
		MobilePhone:            c.MobilePhone,
		PreferredContactMethod: c.PreferredContactMethod,
		PreferredContactTime:   c.PreferredContactTime,
		SubscribedToEmail:      c.SubscribedToEmail,
		SubscribedToSMS:        c.SubscribedToSMS,
	}
}
