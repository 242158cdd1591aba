package scope

import (
	"fmt"

	"github.com/google/uuid"
)

// Caller tags longer than this are truncated before being used in a name.
const maxCallerTagLength = 15

// generateHubName generates a unique hub name of the form '<random>-<tag>'
// where random is the first 13 characters of a UUID. The result stays far
// under the service's name length limit.
func generateHubName(callerTag string) string {
	tag := callerTag
	if tag == "" {
		tag = "scope"
	}
	if len(tag) > maxCallerTagLength {
		tag = tag[:maxCallerTagLength]
	}
	return fmt.Sprintf("%s-%s", uuid.NewString()[:13], tag)
}

// generateNamespaceName generates a globally unique namespace name. Namespace
// names are capped at 50 characters; prefix plus UUID is exactly 49.
func generateNamespaceName() string {
	return fmt.Sprintf("go-eventhubs-%s", uuid.NewString())
}
