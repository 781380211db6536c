package rpcerr

import (
	"strconv"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/protoadapt"
	"google.golang.org/protobuf/types/known/durationpb"
)

// ErrorInfoDomain is the errdetails.ErrorInfo domain attached by GRPCStatus.
const ErrorInfoDomain = "rpcdispatch"

// GRPCStatus lets status.FromError and status.Code understand classified
// errors when they cross a gRPC boundary.
func (e *Error) GRPCStatus() *status.Status {
	st := status.New(e.grpcCode(), e.Error())

	info := &errdetails.ErrorInfo{
		Reason: e.Identifier,
		Domain: ErrorInfoDomain,
		Metadata: map[string]string{
			"kind":   e.Kind.String(),
			"code":   strconv.Itoa(e.Code),
			"method": e.Method,
		},
	}
	if e.Kind == KindMigrate {
		info.Metadata["datacenter"] = strconv.Itoa(int(e.Datacenter))
	}

	details := []protoadapt.MessageV1{info}
	if e.Kind == KindFloodWait {
		details = append(details, &errdetails.RetryInfo{RetryDelay: durationpb.New(e.Wait)})
	}

	withDetails, err := st.WithDetails(details...)
	if err != nil {
		return st
	}
	return withDetails
}

func (e *Error) grpcCode() codes.Code {
	switch e.Kind {
	case KindFloodWait:
		return codes.ResourceExhausted
	case KindMigrate, KindTransient:
		return codes.Unavailable
	case KindUnknown:
		return codes.Unknown
	}
	switch e.Code {
	case 400:
		return codes.InvalidArgument
	case 401:
		return codes.Unauthenticated
	case 403:
		return codes.PermissionDenied
	case 404:
		return codes.NotFound
	case 406:
		return codes.FailedPrecondition
	case 420:
		return codes.ResourceExhausted
	case 500:
		return codes.Internal
	}
	return codes.Unknown
}
