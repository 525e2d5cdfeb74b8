// Package script runs Lua event handlers as a layer.
//
// A script may define any of these globals:
//
//	function on_attach() end
//	function on_detach() end
//	function on_update(dt) end          -- dt in seconds
//	function on_event(e) return false end
//
// on_event receives a table with name, kind, categories, handled and desc
// fields plus the payload of the event (key_code, repeat_count, x, y and
// so on). Returning a truthy value marks the event handled, which stops
// it reaching lower layers.
//
// The ember global exposes ember.category.*, ember.kind.*, ember.log(msg)
// and ember.in_category(e, mask). Only the base, table, string and math
// libraries are available.
package script
