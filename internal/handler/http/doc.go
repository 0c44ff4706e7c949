// Package http implements the REST API of the study portal.
//
// The /forms and /schema routes are used by the schema editors and require
// an administrator token. Every route passes through trace id, access log
// and gzip middleware before it reaches the service layer.
package http
