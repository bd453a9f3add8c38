/*
Package observability exports runner activity as Prometheus metrics.

Metrics registers its collectors on a private registry, so several runners in
one process (tests, mostly) never collide on the default registry.
*/
package observability
