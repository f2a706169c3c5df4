/*
Package scramble provides reversible, password-keyed obfuscation of raw image bytes.

Note that this is NOT encryption, since the scheme is deliberately weak: a
single repeating XOR byte and a seeded byte shuffle.
This falls squarely under the obfuscation category.
As such, it is NOT recommended for security critical use.
That being said, it's useful for keeping image content away from casual viewing, since reversing it requires knowledge of the original password.

# How it works:

A password is hashed with SHA-256 once per invocation.
The first byte of the digest becomes a constant XOR mask, and the first 8 bytes become a 64-bit seed for a deterministic permutation of the buffer's byte positions.
Encrypting applies the XOR mask first and the shuffle second.
Decrypting must undo them in the opposite order: unshuffle first, then XOR.
Either transform can also be applied on its own.

# Important note:

The same password and transform set must be provided to accurately reverse the process.
Failing to do so will likely result in garbled or partly de-obfuscated data.

# General guidelines:
  - Both transforms are exact inverses of themselves or their counterpart, so a round trip is always bit-for-bit.
  - The permutation is recomputed from the seed on both sides; nothing about it is stored with the data.
  - Only the flat byte sequence is touched. Image dimensions and channel layout ride alongside untouched.
*/
package scramble
