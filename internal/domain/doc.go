// Package domain contains the core business entities, value objects, and
// domain logic of the application: the Task entity, the canonical status
// vocabulary with its two wire translations, and the pure validation and
// sanitization rules applied to caller input. It is independent of any
// specific infrastructure or delivery mechanism.
package domain
