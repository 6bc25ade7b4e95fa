// Package http provides HTTP adapters for the admin and public APIs.
//
// Admin routes mount under /admin/api:
//   - Content blocks: /content-blocks, /content-blocks/{id}, plus
//     /duplicate, /status, /versions, and /versions/{version}/restore
//   - Overview: /overview
//   - Products: /products, /products/{id}, /products/{id}/toggle
//   - Journal: /posts, /posts/{id}, /posts/{id}/status
//   - Translations: /translations, /translations/{id}, versions and restore
//   - Settings: /settings, /settings/{key}
//   - Quotations: /quotations, /quotations/{id}, /quotations/{id}/status
//
// Public routes mount under /api:
//   - /content/{section}, /translations, /products, /posts, /posts/{slug}
//   - POST /quotations and /contact/whatsapp
//
// Host applications register the handlers on their own mux.
package http
