package validate

import (
	"net"
	"reflect"
	"strings"

	"github.com/google/uuid"
)

// Check is a unary validation over a raw value. Checks report false on
// malformed input instead of failing.
type Check func(value any) bool

var customChecks = map[string]Check{
	"is_empty":        IsEmpty,
	"is_mac_address":  IsMACAddress,
	"is_ip_address":   IsIPAddress,
	"is_ipv4_address": IsIPv4Address,
	"is_ipv6_address": IsIPv6Address,
	"is_true":         IsTrue,
	"is_false":        IsFalse,
	"is_uuid":         IsUUID,
}

// Custom resolves a named check such as "is_empty", accepting any case.
// A negated name ("is_not_empty") resolves to the negation of the base
// check.
func Custom(name string) (Check, bool) {
	name = strings.ToLower(name)
	if check, ok := customChecks[name]; ok {
		return check, true
	}

	if !strings.Contains(name, "_not_") {
		return nil, false
	}
	base, ok := customChecks[strings.Replace(name, "not_", "", 1)]
	if !ok {
		return nil, false
	}

	return func(value any) bool { return !base(value) }, true
}

// IsEmpty reports whether the value is nil, an empty string, or an
// empty collection.
func IsEmpty(value any) bool {
	if value == nil {
		return true
	}
	if text, ok := value.(string); ok {
		return text == ""
	}

	reflected := reflect.ValueOf(value)
	switch reflected.Kind() {
	case reflect.Slice, reflect.Array, reflect.Map:
		return reflected.Len() == 0
	}

	return false
}

// IsTrue reports whether the value is the boolean true.
func IsTrue(value any) bool {
	current, ok := value.(bool)
	return ok && current
}

// IsFalse reports whether the value is the boolean false.
func IsFalse(value any) bool {
	current, ok := value.(bool)
	return ok && !current
}

// IsMACAddress reports whether the value is a parseable MAC address.
func IsMACAddress(value any) bool {
	text, ok := value.(string)
	if !ok {
		return false
	}
	_, err := net.ParseMAC(text)
	return err == nil
}

// IsIPAddress reports whether the value is an IPv4 or IPv6 address.
func IsIPAddress(value any) bool {
	text, ok := value.(string)
	return ok && net.ParseIP(text) != nil
}

// IsIPv4Address reports whether the value is an IPv4 address.
func IsIPv4Address(value any) bool {
	text, ok := value.(string)
	if !ok {
		return false
	}
	ip := net.ParseIP(text)
	return ip != nil && ip.To4() != nil
}

// IsIPv6Address reports whether the value is an IPv6 address.
func IsIPv6Address(value any) bool {
	text, ok := value.(string)
	if !ok {
		return false
	}
	ip := net.ParseIP(text)
	return ip != nil && ip.To4() == nil
}

// IsUUID reports whether the value is a valid UUID string.
func IsUUID(value any) bool {
	text, ok := value.(string)
	return ok && uuid.Validate(text) == nil
}
