/*
Package dn implements a schema-aware model of LDAP distinguished names:
parsing and rendering per [RFC 4514], search-filter parsing per
[RFC 4515], and LDAP URL parsing per [RFC 4516].

# Forms

Every AVA, RDN and DN carries up to three textual forms: Name (the exact
user-supplied text), Escaped (minimal RFC 4514 escaping with case and
spacing preserved) and Normalized (the schema-bound canonical form used
for equality and ordering). Normalized is only populated once a value
has been resolved against a [SchemaView]; a construction using [NoSchema]
still produces an Escaped form, just not an authoritative Normalized one.

# Schema

[SchemaView] is the sole external collaborator: a read-only, concurrency-
safe lookup from attribute descriptor or OID to its canonical OID, syntax
human-readability and governing matching rule. A full schema registry,
attribute-entry storage and LDAP message encoding are all out of scope;
callers needing those bring their own.

[RFC 4514]: https://datatracker.ietf.org/doc/html/rfc4514
[RFC 4515]: https://datatracker.ietf.org/doc/html/rfc4515
[RFC 4516]: https://datatracker.ietf.org/doc/html/rfc4516
*/
package dn
