package script

import (
	"strings"
	"unicode"

	lua "github.com/yuin/gopher-lua"
	"go.uber.org/zap"

	"github.com/dshills/ember/internal/event"
)

// installAPI defines the ember global and routes print to the client
// logger. Go functions registered here run with mu held and must not
// lock it.
func (l *Layer) installAPI() {
	L := l.L

	categories := L.NewTable()
	for _, c := range event.AllCategories() {
		categories.RawSetString(snake(c.String()), lua.LNumber(c))
	}

	kinds := L.NewTable()
	for _, k := range event.Kinds() {
		kinds.RawSetString(snake(k.String()), lua.LNumber(k))
	}

	ember := L.SetFuncs(L.NewTable(), map[string]lua.LGFunction{
		"log":         l.luaLog,
		"in_category": luaInCategory,
	})
	ember.RawSetString("category", categories)
	ember.RawSetString("kind", kinds)
	L.SetGlobal("ember", ember)

	L.SetGlobal("print", L.NewFunction(l.luaPrint))
}

// ember.log(msg)
func (l *Layer) luaLog(L *lua.LState) int {
	l.client.Info(L.CheckString(1), zap.String("script", l.source))
	return 0
}

// print(...) joins its arguments with tabs like the stock print.
func (l *Layer) luaPrint(L *lua.LState) int {
	n := L.GetTop()
	parts := make([]string, 0, n)
	for i := 1; i <= n; i++ {
		parts = append(parts, L.ToStringMeta(L.Get(i)).String())
	}
	l.client.Info(strings.Join(parts, "\t"), zap.String("script", l.source))
	return 0
}

// ember.in_category(e, mask) reports whether the event table e belongs to
// any category in mask.
func luaInCategory(L *lua.LState) int {
	t := L.CheckTable(1)
	mask := event.Category(L.CheckInt(2))
	cats, ok := t.RawGetString("categories").(lua.LNumber)
	if !ok {
		L.ArgError(1, "event table has no categories")
		return 0
	}
	L.Push(lua.LBool(event.Category(cats)&mask != 0))
	return 1
}

// snake converts a CamelCase name to snake_case.
func snake(name string) string {
	var b strings.Builder
	for i, r := range name {
		if unicode.IsUpper(r) {
			if i > 0 {
				b.WriteByte('_')
			}
			r = unicode.ToLower(r)
		}
		b.WriteRune(r)
	}
	return b.String()
}
