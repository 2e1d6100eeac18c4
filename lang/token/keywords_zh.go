//go:build localized

package token

// keywords maps the localized (Chinese) keyword set to their Kind, selected
// at build time with the "localized" build tag (see keywords_en.go for the
// default English table). The mapping is the single source of truth for the
// localized surface; there is no runtime toggle.
var keywords = map[string]Kind{
	"与上": AND,
	"类":  CLASS,
	"否则": ELSE,
	"假值": FALSE,
	"函数": FUN,
	"循环": FOR,
	"如果": IF,
	"空值": NIL,
	"或上": OR,
	"打印": PRINT,
	"返回": RETURN,
	"父类": SUPER,
	"这个": THIS,
	"真值": TRUE,
	"声明": VAR,
	"每当": WHILE,
}
