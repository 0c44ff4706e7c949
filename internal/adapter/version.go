package adapter

import (
	"fmt"

	"github.com/Masterminds/semver/v3"
)

// CheckCompatibility reports whether a client built as clientVersion may talk
// to a server running serverVersion. The major versions must be equal; below
// 1.0.0 the minor versions must be equal as well.
//
// A client without a semantic version (a development build) accepts any
// server.
func CheckCompatibility(serverVersion, clientVersion string) error {
	client, err := semver.NewVersion(clientVersion)
	if err != nil {
		return nil
	}

	server, err := semver.NewVersion(serverVersion)
	if err != nil {
		return fmt.Errorf("%w: server reports %q", ErrIncompatibleServer, serverVersion)
	}

	if server.Major() != client.Major() ||
		(client.Major() == 0 && server.Minor() != client.Minor()) {
		return fmt.Errorf("%w: server %s, client %s", ErrIncompatibleServer, server.Original(), client.Original())
	}
	return nil
}
