package policy

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/open-policy-agent/opa/v1/rego"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const plan = `{
	"resource_changes": [
		{
			"address": "aws_s3_bucket.logs",
			"change": {
				"actions": ["create"],
				"after": {
					"tags": {"Owner": "team-a"},
					"tags_all": {"Owner": "team-a", "Environment": ""}
				}
			}
		},
		{
			"address": "aws_instance.legacy",
			"change": {
				"actions": ["delete"],
				"after": null
			}
		},
		{
			"address": "aws_vpc.main",
			"change": {
				"actions": ["update"],
				"after": {
					"tags": {"Owner": "network", "Environment": "prod", "CostCenter": "42"}
				}
			}
		},
		{
			"address": "aws_iam_role.ci",
			"change": {
				"actions": ["create"],
				"after": {}
			}
		},
		{
			"address": "aws_db_instance.main",
			"change": {
				"actions": ["delete", "create"],
				"after": {
					"tags_all": {"Environment": "prod", "CostCenter": "7"}
				}
			}
		}
	]
}`

func evalDeny(t *testing.T, tags []string, planJSON string) []string {
	t.Helper()

	src, err := RequiredTags(tags).Render()
	require.NoError(t, err)

	var input map[string]any
	require.NoError(t, json.Unmarshal([]byte(planJSON), &input))

	rs, err := rego.New(
		rego.Query("data.main.deny"),
		rego.Module("tags.rego", src),
		rego.Input(input),
	).Eval(context.Background())
	require.NoError(t, err)
	require.Len(t, rs, 1)

	values, ok := rs[0].Expressions[0].Value.([]any)
	require.True(t, ok)

	msgs := make([]string, 0, len(values))
	for _, v := range values {
		msgs = append(msgs, v.(string))
	}
	return msgs
}

func TestRequiredTags_Deny(t *testing.T) {
	msgs := evalDeny(t, []string{"Owner", "Environment", "CostCenter"}, plan)

	assert.ElementsMatch(t, []string{
		"Resource 'aws_s3_bucket.logs' is missing required tag: CostCenter",
		"Resource 'aws_s3_bucket.logs' has empty value for required tag: Environment",
		"Resource 'aws_iam_role.ci' is missing required tag: Owner",
		"Resource 'aws_iam_role.ci' is missing required tag: Environment",
		"Resource 'aws_iam_role.ci' is missing required tag: CostCenter",
		"Resource 'aws_db_instance.main' is missing required tag: Owner",
	}, msgs)
}

func TestRequiredTags_NoViolations(t *testing.T) {
	msgs := evalDeny(t, []string{"Owner"}, `{
		"resource_changes": [
			{"address": "aws_vpc.main", "change": {"actions": ["update"], "after": {"tags": {"Owner": "network"}}}},
			{"address": "aws_instance.legacy", "change": {"actions": ["delete"], "after": null}}
		]
	}`)

	assert.Empty(t, msgs)
}

func TestRequiredTags_PrefersTagsAll(t *testing.T) {
	msgs := evalDeny(t, []string{"Owner"}, `{
		"resource_changes": [
			{
				"address": "aws_s3_bucket.data",
				"change": {
					"actions": ["create"],
					"after": {"tags": {"Owner": "team-a"}, "tags_all": {"Environment": "dev"}}
				}
			}
		]
	}`)

	assert.Equal(t, []string{"Resource 'aws_s3_bucket.data' is missing required tag: Owner"}, msgs)
}
