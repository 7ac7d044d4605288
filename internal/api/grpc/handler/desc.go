package handler

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
)

// ServiceName is the fully qualified gRPC service name.
const ServiceName = "emr.v1.EMR"

// Methods open to anonymous callers.
const (
	MethodRegister = "/" + ServiceName + "/Register"
	MethodLogin    = "/" + ServiceName + "/Login"
)

// unary builds a method whose request and response are Struct messages
// carrying the JSON form of Req and Resp.
func unary[Req, Resp any](name string, call func(ctx context.Context, req Req) (Resp, error)) grpc.MethodDesc {
	return grpc.MethodDesc{
		MethodName: name,
		Handler: func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
			in := new(structpb.Struct)
			if err := dec(in); err != nil {
				return nil, err
			}

			handle := func(ctx context.Context, req any) (any, error) {
				var r Req
				if err := decodeStruct(req.(*structpb.Struct), &r); err != nil {
					return nil, status.Error(codes.InvalidArgument, err.Error())
				}

				resp, err := call(ctx, r)
				if err != nil {
					return nil, err
				}

				out, err := encodeStruct(resp)
				if err != nil {
					return nil, status.Error(codes.Internal, err.Error())
				}
				return out, nil
			}

			if interceptor == nil {
				return handle(ctx, in)
			}
			info := &grpc.UnaryServerInfo{
				Server:     srv,
				FullMethod: "/" + ServiceName + "/" + name,
			}
			return interceptor(ctx, in, info, handle)
		},
	}
}

// ServiceDesc describes the EMR service backed by h.
func (h *EMR) ServiceDesc() *grpc.ServiceDesc {
	return &grpc.ServiceDesc{
		ServiceName: ServiceName,
		HandlerType: (*any)(nil),
		Methods: []grpc.MethodDesc{
			unary("Register", h.Register),
			unary("Login", h.Login),
			unary("Logout", h.Logout),
			unary("CurrentUser", h.CurrentUser),

			unary("ListPatients", h.ListPatients),
			unary("GetPatient", h.GetPatient),
			unary("AddPatient", h.AddPatient),
			unary("UpdatePatient", h.UpdatePatient),
			unary("DeletePatient", h.DeletePatient),

			unary("ListAppointments", h.ListAppointments),
			unary("ScheduleAppointment", h.ScheduleAppointment),
			unary("UpdateAppointment", h.UpdateAppointment),
			unary("CancelAppointment", h.CancelAppointment),
			unary("DeleteAppointment", h.DeleteAppointment),

			unary("ListMessages", h.ListMessages),
			unary("SendMessage", h.SendMessage),
			unary("MarkMessageRead", h.MarkMessageRead),
			unary("UpdateMessage", h.UpdateMessage),
			unary("DeleteMessage", h.DeleteMessage),

			unary("GetSettings", h.GetSettings),
			unary("SaveSettings", h.SaveSettings),
			unary("GetDashboard", h.GetDashboard),
		},
		Streams: []grpc.StreamDesc{},
	}
}
