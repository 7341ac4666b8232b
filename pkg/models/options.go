package models

// ContactMethod is the customer's preferred contact channel.
type ContactMethod string

const (
	ContactSMS         ContactMethod = "sms"
	ContactEmail       ContactMethod = "email"
	ContactHomePhone   ContactMethod = "home_phone"
	ContactMobilePhone ContactMethod = "mobile_phone"
)

// ContactTime is the customer's preferred contact window.
type ContactTime string

const (
	TimeMorning   ContactTime = "morning"
	TimeAfternoon ContactTime = "afternoon"
	TimeEvening   ContactTime = "evening"
)

// Option is a value/label pair for a picker.
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

var ContactMethodOptions = []Option{
	{Value: string(ContactSMS), Label: "SMS"},
	{Value: string(ContactEmail), Label: "Email"},
	{Value: string(ContactHomePhone), Label: "Home Phone"},
	{Value: string(ContactMobilePhone), Label: "Mobile Phone"},
}

var ContactTimeOptions = []Option{
	{Value: string(TimeMorning), Label: "Morning (9am - 11am)"},
	{Value: string(TimeAfternoon), Label: "Afternoon (12pm - 4pm)"},
	{Value: string(TimeEvening), Label: "Evening (5pm - 8pm)"},
}

// RegionOptions lists the region codes offered by the state picker.
var RegionOptions = []Option{
	{"AL", "Alabama"}, {"AK", "Alaska"}, {"AZ", "Arizona"}, {"AR", "Arkansas"},
	{"CA", "California"}, {"CO", "Colorado"}, {"CT", "Connecticut"}, {"DE", "Delaware"},
	{"DC", "District of Columbia"}, {"FL", "Florida"}, {"GA", "Georgia"}, {"HI", "Hawaii"},
	{"ID", "Idaho"}, {"IL", "Illinois"}, {"IN", "Indiana"}, {"IA", "Iowa"},
	{"KS", "Kansas"}, {"KY", "Kentucky"}, {"LA", "Louisiana"}, {"ME", "Maine"},
	{"MD", "Maryland"}, {"MA", "Massachusetts"}, {"MI", "Michigan"}, {"MN", "Minnesota"},
	{"MS", "Mississippi"}, {"MO", "Missouri"}, {"MT", "Montana"}, {"NE", "Nebraska"},
	{"NV", "Nevada"}, {"NH", "New Hampshire"}, {"NJ", "New Jersey"}, {"NM", "New Mexico"},
	{"NY", "New York"}, {"NC", "North Carolina"}, {"ND", "North Dakota"}, {"OH", "Ohio"},
	{"OK", "Oklahoma"}, {"OR", "Oregon"}, {"PA", "Pennsylvania"}, {"RI", "Rhode Island"},
	{"SC", "South Carolina"}, {"SD", "South Dakota"}, {"TN", "Tennessee"}, {"TX", "Texas"},
	{"UT", "Utah"}, {"VT", "Vermont"}, {"VA", "Virginia"}, {"WA", "Washington"},
	{"WV", "West Virginia"}, {"WI", "Wisconsin"}, {"WY", "Wyoming"},
}
