package credentials

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnvProvider(t *testing.T) {
	t.Setenv("UNS_TEST_CREDENTIAL", "from-env")
	ctx := context.Background()

	assert.EqualValues(t, "from-env", Env{}.Lookup(ctx, "UNS_TEST_CREDENTIAL"))
	assert.EqualValues(t, "", Env{}.Lookup(ctx, "UNS_TEST_CREDENTIAL_MISSING"))
}

func TestScopedProvider(t *testing.T) {
	type ctxKey string
	const namespaceKey ctxKey = "namespace"

	resolve := func(ctx context.Context) (string, error) {
		if ns, ok := ctx.Value(namespaceKey).(string); ok {
			return ns, nil
		}
		return "", fmt.Errorf("no namespace")
	}

	provider := NewScoped(resolve, []*NamespaceValues{
		{Namespace: "tenant-a", Values: map[string]string{"AWS_KEY": "tenant-a-key"}},
		nil,
		{Namespace: "", Values: map[string]string{"AWS_KEY": "ignored"}},
	})
	provider.Fallback = Static{"AWS_KEY": "shared-key", "AWS_SECRET": "shared-secret"}

	background := context.Background()
	tenantA := context.WithValue(background, namespaceKey, "tenant-a")
	tenantB := context.WithValue(background, namespaceKey, "tenant-b")

	testCases := []struct {
		name string
		ctx  context.Context
		key  string
		want string
	}{
		{name: "namespace set wins", ctx: tenantA, key: "AWS_KEY", want: "tenant-a-key"},
		{name: "namespace miss falls back", ctx: tenantA, key: "AWS_SECRET", want: "shared-secret"},
		{name: "unknown namespace falls back", ctx: tenantB, key: "AWS_KEY", want: "shared-key"},
		{name: "resolve error falls back", ctx: background, key: "AWS_KEY", want: "shared-key"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.EqualValues(t, tc.want, provider.Lookup(tc.ctx, tc.key))
		})
	}
}
