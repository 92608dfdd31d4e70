// Package mathtext converts plain labels into upright mathtext markup.
package mathtext

import "strings"

var replacer = strings.NewReplacer(
	"^", `}^\mathrm{`,
	"_", `}_\mathrm{`,
	" ", `} \mathrm{`,
	"-", `\mathrm{-}`,
)

// FromText wraps s in \mathrm so that sub- and superscripts stay upright:
//
//	FromText("V_m")  // $\mathrm{V}_\mathrm{m}$
//	FromText("s^-1") // $\mathrm{s}^\mathrm{\mathrm{-}1}$
func FromText(s string) string {
	return `$\mathrm{` + replacer.Replace(s) + `}$`
}
