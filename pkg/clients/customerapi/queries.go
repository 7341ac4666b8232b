package customerapi

const customerFields = `
	id
	email
	first_name
	last_name
	full_name
	home_address_1
	home_address_2
	home_city
	home_state
	home_zip
	home_phone
	mobile_phone
	preferred_contact_method
	preferred_contact_time
	subscribed_to_email
	subscribed_to_sms
`

const customersQuery = `
query {
	customers {` + customerFields + `}
}
`

const customerArgDefs = `
	$email: String!
	$firstName: String!
	$homeAddress1: String
	$homeAddress2: String
	$homeCity: String
	$homeState: String
	$homePhone: String
	$homeZip: String
	$lastName: String
	$mobilePhone: String
	$preferredContactMethod: String
	$preferredContactTime: String
	$subscribedToEmail: Boolean
	$subscribedToSms: Boolean
`

const customerArgs = `
	email: $email
	first_name: $firstName
	home_address_1: $homeAddress1
	home_address_2: $homeAddress2
	home_city: $homeCity
	home_state: $homeState
	home_phone: $homePhone
	home_zip: $homeZip
	last_name: $lastName
	mobile_phone: $mobilePhone
	preferred_contact_method: $preferredContactMethod
	preferred_contact_time: $preferredContactTime
	subscribed_to_email: $subscribedToEmail
	subscribed_to_sms: $subscribedToSms
`

const addCustomerMutation = `
mutation AddCustomer(` + customerArgDefs + `) {
	addCustomer(` + customerArgs + `) {
		status
		message
		customer {` + customerFields + `}
		existingCustomer {` + customerFields + `}
	}
}
`

const editCustomerMutation = `
mutation EditCustomer(
	$id: ID!` + customerArgDefs + `) {
	editCustomer(
		id: $id` + customerArgs + `) {` + customerFields + `}
}
`

const deleteCustomerMutation = `
mutation DeleteCustomer($id: ID!) {
	deleteCustomer(id: $id) {
		success
		message
	}
}
`
