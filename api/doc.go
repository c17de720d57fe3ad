// Package api
// Author: momentics <momentics@gmail.com>
//
// Public contracts for hioload-futures: the bind contract shared by the
// callback cell and the deferred-execution placeholders, structured error
// types, the end-of-stream sentinel, the injectable diagnostic sink, and
// the abstract scheduling capability the cell composes with.
//
// Everything here is interface or value type only; implementations live in
// core/ and adapters/.
package api
