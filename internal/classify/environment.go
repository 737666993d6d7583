package classify

import "fmt"

// Environment is the large-scale-structure classification of a supernova
// relative to its nearest catalogued void.
type Environment int

const (
	EnvVoid Environment = iota
	EnvWall
	EnvCluster
)

// Environments lists the labels in display order.
var Environments = []Environment{EnvVoid, EnvWall, EnvCluster}

func (e Environment) String() string {
	switch e {
	case EnvVoid:
		return "void"
	case EnvWall:
		return "wall"
	case EnvCluster:
		return "cluster"
	default:
		return "unknown"
	}
}

// ParseEnvironment converts a user-supplied label into an Environment.
func ParseEnvironment(s string) (Environment, error) {
	switch s {
	case "void":
		return EnvVoid, nil
	case "wall":
		return EnvWall, nil
	case "cluster":
		return EnvCluster, nil
	default:
		return EnvCluster, fmt.Errorf("unknown environment %q (valid: void, wall, cluster)", s)
	}
}
