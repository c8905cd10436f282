package lifecycle

import "strings"

func isValidOrderID(id string) bool {
	return strings.TrimSpace(id) != ""
}

func isValidStatus(status string) bool {
	switch status {
	case "pending", "processing", "shipped", "delivered", "cancelled":
		return true
	default:
		return false
	}
}
