// Package script embeds a Lua runtime for handler scripting.
//
// Scripts register request and notification handlers against incoming
// LSP methods through an `lspcore` table:
//
//	lspcore.on_request("textDocument/hover", function(params)
//	    return { contents = { kind = "plaintext", value = "hi" } }
//	end)
//
//	lspcore.on_notification("textDocument/didOpen", function(params)
//	    lspcore.log("info", "opened " .. params.textDocument.uri)
//	end)
//
// Params arrive as Lua tables converted from the wire value; returned
// tables convert back and are validated by the normal response encoding.
// A script failure surfaces as an InternalError response and a log entry,
// never a crash.
//
// gopher-lua states are not goroutine safe; the engine serializes all
// calls into one state behind a mutex, so scripted handlers execute one
// at a time even on a parallel request pool.
package script
