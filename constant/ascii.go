package constant

import _ "embed"

// Logo is the banner printed above the root command help.
//
//go:embed ascii.txt
var Logo string
