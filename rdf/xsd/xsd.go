// Package xsd holds the XML Schema datatype IRIs used for canonicalising
// Turtle numeric and boolean literals.
package xsd

const ns = "http://www.w3.org/2001/XMLSchema#"

// Datatype IRIs referenced by the Turtle grammar's literal productions.
const (
	String  = ns + "string"
	Integer = ns + "integer"
	Decimal = ns + "decimal"
	Double  = ns + "double"
	Boolean = ns + "boolean"
)
