package terraform

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseOutputs(t *testing.T) {
	t.Parallel()

	data := []byte(`{
  "s3_bucket_name": {
    "sensitive": false,
    "type": "string",
    "value": "animal-insights-prod-a1b2c3"
  },
  "aws_region": {
    "sensitive": false,
    "type": "string",
    "value": "us-east-1"
  },
  "snowflake_role_arn": {
    "sensitive": false,
    "type": "string",
    "value": "arn:aws:iam::123456789012:role/snowflake-s3-role"
  }
}`)

	flat, err := parseOutputs(data)
	require.NoError(t, err)
	require.Len(t, flat, 3)
	require.Equal(t, "animal-insights-prod-a1b2c3", flat["s3_bucket_name"])
	require.Equal(t, "us-east-1", flat["aws_region"])
	require.Equal(t, "arn:aws:iam::123456789012:role/snowflake-s3-role", StringOutput(flat, "snowflake_role_arn"))
}

func TestParseOutputsEmpty(t *testing.T) {
	t.Parallel()

	flat, err := parseOutputs([]byte(`{}`))
	require.NoError(t, err)
	require.Empty(t, flat)
}

func TestParseOutputsMalformed(t *testing.T) {
	t.Parallel()

	_, err := parseOutputs([]byte(`not json`))
	require.Error(t, err)
}

func TestStringOutputNonString(t *testing.T) {
	t.Parallel()

	flat, err := parseOutputs([]byte(`{"count": {"type": "number", "value": 3}}`))
	require.NoError(t, err)
	require.Equal(t, "", StringOutput(flat, "count"))
	require.Equal(t, "", StringOutput(flat, "missing"))
}
