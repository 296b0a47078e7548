package operation

// Argument shapes for registered operations. Business limits (lengths,
// attachment counts) stay in the service inputs; these only pin the shape.

const emptyArgsSchema = `{
	"type": "object",
	"additionalProperties": false
}`

const createTicketSchema = `{
	"type": "object",
	"required": ["category", "description"],
	"properties": {
		"category":       {"type": "string", "enum": ["water", "electricity", "garbage", "other"]},
		"title":          {"type": ["string", "null"]},
		"description":    {"type": "string"},
		"addressText":    {"type": ["string", "null"]},
		"lat":            {"type": ["number", "null"]},
		"lng":            {"type": ["number", "null"]},
		"attachmentUrls": {"type": "array", "items": {"type": "string"}}
	},
	"additionalProperties": false
}`

const assignTicketSchema = `{
	"type": "object",
	"required": ["ticketId", "assigneeId"],
	"properties": {
		"ticketId":   {"type": "string"},
		"assigneeId": {"type": "string"},
		"note":       {"type": ["string", "null"]}
	},
	"additionalProperties": false
}`

const ticketIDSchema = `{
	"type": "object",
	"required": ["ticketId"],
	"properties": {
		"ticketId": {"type": "string"}
	},
	"additionalProperties": false
}`

const addStaffUpdateSchema = `{
	"type": "object",
	"required": ["ticketId", "message"],
	"properties": {
		"ticketId":       {"type": "string"},
		"message":        {"type": "string"},
		"attachmentUrls": {"type": "array", "items": {"type": "string"}}
	},
	"additionalProperties": false
}`

const escalateSchema = `{
	"type": "object",
	"required": ["ticketId"],
	"properties": {
		"ticketId":     {"type": "string"},
		"supervisorId": {"type": ["string", "null"]},
		"reason":       {"type": ["string", "null"]}
	},
	"additionalProperties": false
}`

const markResolvedSchema = `{
	"type": "object",
	"required": ["ticketId"],
	"properties": {
		"ticketId":       {"type": "string"},
		"note":           {"type": ["string", "null"]},
		"attachmentUrls": {"type": "array", "items": {"type": "string"}}
	},
	"additionalProperties": false
}`

const citizenCloseSchema = `{
	"type": "object",
	"required": ["ticketId"],
	"properties": {
		"ticketId": {"type": "string"},
		"rating":   {"type": ["integer", "null"], "minimum": 1, "maximum": 5},
		"feedback": {"type": ["string", "null"]}
	},
	"additionalProperties": false
}`

const reopenSchema = `{
	"type": "object",
	"required": ["ticketId", "reason"],
	"properties": {
		"ticketId": {"type": "string"},
		"reason":   {"type": "string"}
	},
	"additionalProperties": false
}`
