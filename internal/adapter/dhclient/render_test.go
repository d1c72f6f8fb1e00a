//go:build unit

package dhclient

import (
	"testing"

	"netifctl/internal/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderConfig(t *testing.T) {
	t.Run("V4", func(t *testing.T) {
		text, err := renderConfig(types.FamilyV4, "eth0", "vyhost")
		require.NoError(t, err)

		want := `# generated by netifctl
option rfc3442-classless-static-routes code 121 = array of unsigned integer 8;
interface "eth0" {
    send host-name "vyhost";
    request subnet-mask, broadcast-address, routers, domain-name-servers, rfc3442-classless-static-routes, domain-name, interface-mtu;
}
`
		assert.Equal(t, want, text)
	})

	t.Run("V6", func(t *testing.T) {
		text, err := renderConfig(types.FamilyV6, "eth0", "vyhost")
		require.NoError(t, err)

		want := `# generated by netifctl
interface "eth0" {
    request routers, domain-name-servers, domain-name;
}
`
		assert.Equal(t, want, text)
	})

	t.Run("V6CarriesNoHostname", func(t *testing.T) {
		text, err := renderConfig(types.FamilyV6, "eth0", "vyhost")
		require.NoError(t, err)
		assert.NotContains(t, text, "vyhost")
	})
}
