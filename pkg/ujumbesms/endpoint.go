package ujumbesms

import "fmt"

type Endpoint int

const (
	EndpointMessaging Endpoint = iota + 1
	EndpointBalance
	EndpointMessages
)

var endpointPaths = map[Endpoint]string{
	EndpointMessaging: "/api/messaging",
	EndpointBalance:   "/api/balance",
	EndpointMessages:  "/api/messages",
}

var endpointNames = map[Endpoint]string{
	EndpointMessaging: "messaging",
	EndpointBalance:   "balance",
	EndpointMessages:  "messages",
}

// Path returns the URL path appended to the configured base URL.
func (e Endpoint) Path() string {
	return endpointPaths[e]
}

func (e Endpoint) String() string {
	if name, ok := endpointNames[e]; ok {
		return name
	}
	return fmt.Sprintf("endpoint(%d)", int(e))
}

func ParseEndpoint(path string) (Endpoint, error) {
	for endpoint, p := range endpointPaths {
		if p == path {
			return endpoint, nil
		}
	}
	return 0, fmt.Errorf("unknown endpoint path %q", path)
}
