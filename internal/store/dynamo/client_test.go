package dynamo

import (
	"testing"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/stretchr/testify/assert"
)

func TestConfig_LoadOptions(t *testing.T) {
	remote := Config{Region: "eu-west-3"}
	assert.Len(t, remote.loadOptions(), 1)

	local := Config{Region: "eu-west-3", Endpoint: "http://localhost:8000"}
	opts := local.loadOptions()
	assert.Len(t, opts, 2)

	var lo config.LoadOptions
	for _, o := range opts {
		assert.NoError(t, o(&lo))
	}
	assert.Equal(t, "eu-west-3", lo.Region)
	assert.NotNil(t, lo.Credentials)
}
