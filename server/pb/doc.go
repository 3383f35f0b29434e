// Package pb holds the protobuf messages and gRPC stubs of the xdna
// daemon, generated from xdna.proto.
package pb

//go:generate protoc --go_out=. --go_opt=paths=source_relative --go-grpc_out=. --go-grpc_opt=paths=source_relative xdna.proto
