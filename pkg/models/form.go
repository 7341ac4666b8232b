package models

// FormData is the record collected across the two add-customer screens.
// The zero value is the empty form.
type FormData struct {
	// Contact screen
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName"`
	Address1  string `json:"address1"`
	Address2  string `json:"address2"`
	City      string `json:"city"`
	State     string `json:"state"`
	Zip       string `json:"zip"`

	// Preferences screen
	Email             string        `json:"email" validate:"required"`
	HomePhone         string        `json:"homePhone"`
	MobilePhone       string        `json:"mobilePhone"`
	PrefContactMethod ContactMethod `json:"prefContactMethod"`
	PrefContactTime   ContactTime   `json:"prefContactTime"`
	EmailOptIn        bool          `json:"emailOptIn"`
	SMSOptIn          bool          `json:"smsOptIn"`
}

// ContactPatch carries the fields edited on the contact screen.
// A nil field was not supplied and leaves the stored value alone.
type ContactPatch struct {
	FirstName *string `json:"firstName"`
	LastName  *string `json:"lastName"`
	Address1  *string `json:"address1"`
	Address2  *string `json:"address2"`
	City      *string `json:"city"`
	State     *string `json:"state"`
	Zip       *string `json:"zip"`
}

// PreferencesPatch carries the fields edited on the preferences screen.
type PreferencesPatch struct {
	Email             *string        `json:"email"`
	HomePhone         *string        `json:"homePhone"`
	MobilePhone       *string        `json:"mobilePhone"`
	PrefContactMethod *ContactMethod `json:"prefContactMethod"`
	PrefContactTime   *ContactTime   `json:"prefContactTime"`
	EmailOptIn        *bool          `json:"emailOptIn"`
	SMSOptIn          *bool          `json:"smsOptIn"`
}

// ApplyTo merges the supplied fields into data.
func (p ContactPatch) ApplyTo(data *FormData) {
	setString(&data.FirstName, p.FirstName)
	setString(&data.LastName, p.LastName)
	setString(&data.Address1, p.Address1)
	setString(&data.Address2, p.Address2)
	setString(&data.City, p.City)
	setString(&data.State, p.State)
	setString(&data.Zip, p.Zip)
}

// ApplyTo merges the supplied fields into data.
func (p PreferencesPatch) ApplyTo(data *FormData) {
	setString(&data.Email, p.Email)
	setString(&data.HomePhone, p.HomePhone)
	setString(&data.MobilePhone, p.MobilePhone)
	if p.PrefContactMethod != nil {
		data.PrefContactMethod = *p.PrefContactMethod
	}
	if p.PrefContactTime != nil {
		data.PrefContactTime = *p.PrefContactTime
	}
	if p.EmailOptIn != nil {
		data.EmailOptIn = *p.EmailOptIn
	}
	if p.SMSOptIn != nil {
		data.SMSOptIn = *p.SMSOptIn
	}
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}
