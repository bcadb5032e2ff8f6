// Package links fetches a page and extracts anchor hrefs in document order.
package links
