package dhclient

import (
	"fmt"
	"strings"
	"text/template"

	"netifctl/internal/types"
)

// Client configuration templates. The v4 config asks for classless static
// routes (option 121) and sends the system hostname; the v6 config carries
// no hostname line because DHCPv6 identifies clients by DUID.
var (
	configV4 = template.Must(template.New("dhclient4").Parse(`# generated by netifctl
option rfc3442-classless-static-routes code 121 = array of unsigned integer 8;
interface "{{ .Interface }}" {
    send host-name "{{ .Hostname }}";
    request subnet-mask, broadcast-address, routers, domain-name-servers, rfc3442-classless-static-routes, domain-name, interface-mtu;
}
`))

	configV6 = template.Must(template.New("dhclient6").Parse(`# generated by netifctl
interface "{{ .Interface }}" {
    request routers, domain-name-servers, domain-name;
}
`))
)

type configData struct {
	Interface string
	Hostname  string
}

// renderConfig produces the dhclient configuration text for the given
// address family.
func renderConfig(family types.Family, interfaceName, hostname string) (string, error) {
	tmpl := configV4
	if family == types.FamilyV6 {
		tmpl = configV6
	}

	var b strings.Builder
	if err := tmpl.Execute(&b, configData{Interface: interfaceName, Hostname: hostname}); err != nil {
		return "", fmt.Errorf("failed to render dhclient config for %s: %w", interfaceName, err)
	}
	return b.String(), nil
}
