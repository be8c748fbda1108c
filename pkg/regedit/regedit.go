// Package regedit is the high-level entry point: it applies one request to
// a registry text file, running the full parse → resolve → execute →
// serialize pipeline. The host wrapper (CLI or automation) builds a Request
// and reports the Response; everything in between lives here.
package regedit

import (
	"os"

	"github.com/mathworld/regedit/internal/edit"
	"github.com/mathworld/regedit/internal/regtext"
	"github.com/mathworld/regedit/internal/resolve"
	"github.com/mathworld/regedit/internal/writer"
	"github.com/mathworld/regedit/pkg/logging"
	"github.com/mathworld/regedit/pkg/types"
)

// Re-exported request/response shapes for convenience.
type (
	Request  = types.Request
	Response = types.Response
)

// Apply runs one request end to end. The file is parsed, the decision table
// picks the operation, the engine executes it, and — only when the result
// code indicates a mutation — the model is serialized back to the output
// path (defaulting to the input path) through the atomic sink.
//
// Logical non-mutations come back as successful responses with
// Changed=false. Errors are reserved for filesystem failures, undecodable
// input, and unsatisfiable verb/field combinations.
func Apply(req Request) (Response, error) {
	log := logging.GetLogger("regedit")

	if req.Verb == "" {
		req.Verb = types.VerbChk
	}
	if !req.Verb.Valid() {
		return Response{}, &types.Error{Kind: types.ErrKindConfig, Msg: "unknown verb " + string(req.Verb)}
	}

	op, err := resolve.Resolve(req)
	if err != nil {
		return Response{}, err
	}
	log.Debug().Stringer("op", op).Str("file", req.File).Str("hkey", req.HKey).Msg("resolved operation")

	doc, warnings, err := regtext.ParseFile(req.File, regtext.Options{
		Encoding: req.Encoding,
		Strict:   req.Strict,
	})
	if err != nil {
		return Response{}, err
	}

	eng := edit.New(doc.Registry, req.Mode())

	var code types.Code
	var value string
	switch op {
	case resolve.OpHKeyExists:
		code = eng.HKeyExists(req.HKey)
	case resolve.OpKeyExists:
		code = eng.KeyExists(req.HKey, req.Key)
	case resolve.OpConfirmValue:
		code = eng.ConfirmValue(req.HKey, req.Key, req.Val)
	case resolve.OpGetValue:
		value, code = eng.GetValue(req.HKey, req.Key)
	case resolve.OpAddHKey:
		code = eng.AddHKey(req.HKey)
	case resolve.OpAddKey:
		code = eng.AddKey(req.HKey, req.Key)
	case resolve.OpAddKeyValue:
		code = eng.AddKeyValue(req.HKey, req.Key, req.Val)
	case resolve.OpDeleteHKey:
		code = eng.DeleteHKey(req.HKey)
	case resolve.OpDeleteKey:
		code = eng.DeleteKey(req.HKey, req.Key)
	case resolve.OpDeleteKeyValue:
		code = eng.DeleteKeyValue(req.HKey, req.Key, req.Val)
	case resolve.OpRenameHKey:
		code = eng.RenameHKey(req.HKey, req.NewHKey)
	case resolve.OpRenameKey:
		code = eng.RenameKey(req.HKey, req.Key, req.NewKey)
	case resolve.OpSetValue:
		code = eng.SetValue(req.HKey, req.Key, resolve.NewValue(req))
	}

	resp := Response{
		Changed:  code.Mutated(),
		Code:     code,
		Message:  code.Message(),
		Value:    value,
		Warnings: warnings,
	}

	if !resp.Changed {
		return resp, nil
	}

	out := req.OutFile
	if out == "" {
		out = req.File
	}
	if req.Backup {
		if _, statErr := os.Stat(out); statErr == nil {
			if err := writer.Backup(out); err != nil {
				return resp, &types.Error{Kind: types.ErrKindNotWritable, Msg: "backup failed for " + out, Err: err}
			}
		}
	}
	if err := regtext.WriteFile(out, doc); err != nil {
		return resp, err
	}
	log.Info().Str("file", out).Str("code", string(code)).Msg("registry file written")

	return resp, nil
}
