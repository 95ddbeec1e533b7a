// Package memory derives the Go heap limit from the container's memory limit.
//
// Call [Configure] early in main, before the catalog is loaded:
//
//	limit := memory.Configure()
//
// Environment:
//
//	GOMEMLIMIT    Standard Go setting; when present it is left alone and reported.
//	MEMORY_LIMIT  Container limit in bytes, usually from the Kubernetes Downward API.
//	MEMORY_RATIO  Share of MEMORY_LIMIT given to the heap, (0, 1]. Default 0.9.
package memory
