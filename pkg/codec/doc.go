/*
Package codec converts between the text encodings used to pass raw bytes around in cryptographic exercises.

Hex text is decoded with DecodeHex and produced with EncodeHex.
Base64 text uses the standard alphabet with '=' padding, and is produced with EncodeBase64 and decoded with DecodeBase64.

Every function in this package is pure: inputs are never modified, and every returned slice is freshly allocated.
Malformed input is reported with a *DecodeError, and no partial output is ever returned.
*/
package codec
