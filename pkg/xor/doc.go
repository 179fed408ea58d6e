/*
Package xor combines byte sequences with bitwise exclusive-or.

# Fixed XOR

Combine takes two sequences of the same length and returns a new sequence where each byte is the XOR of the bytes at the same position.
Sequences of different lengths are never truncated or padded; a *LengthMismatchError is returned instead.

# Repeating-key XOR

RepeatingKey, Reader, and Writer apply a key to data by cycling through the key bytes, starting over at the first byte (or the given offset) once the last one is used.
This is how the classic Vigenère-style XOR ciphers work, and is trivially reversible by applying the same key and offset again.

Note that this is NOT encryption.
Repeating-key XOR is easily broken with frequency analysis, so it's only useful for exercises and light obfuscation.

GenKey and GenKeyAndOffset produce random keys from the OS entropy pool.
*/
package xor
