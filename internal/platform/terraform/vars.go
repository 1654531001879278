package terraform

import (
	"fmt"
	"os"
	"strings"
)

// Vars holds the values written to terraform.tfvars for the warehouse
// integration step.
type Vars struct {
	Region                     string
	SnowflakeAccountID         string
	SnowflakeExternalID        string
	EnableSnowflakeIntegration bool
}

// Render produces the tfvars assignment text.
func (v Vars) Render() string {
	var b strings.Builder
	fmt.Fprintf(&b, "aws_region = %q\n", v.Region)
	fmt.Fprintf(&b, "snowflake_account_id = %q\n", v.SnowflakeAccountID)
	fmt.Fprintf(&b, "snowflake_external_id = %q\n", v.SnowflakeExternalID)
	fmt.Fprintf(&b, "enable_snowflake_integration = %t\n", v.EnableSnowflakeIntegration)
	return b.String()
}

// WriteVars writes the tfvars file, overwriting any previous content.
func WriteVars(path string, v Vars) error {
	if err := os.WriteFile(path, []byte(v.Render()), 0o600); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
