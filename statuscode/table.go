package statuscode

// Table maps a 32-bit StatusCode value to its symbolic name, e.g.
// 0x80340000 -> "Bad_NodeIdUnknown". Only values the OPC UA specification
// assigns a name to appear here; lookups for any other value report
// ok=false.
//
// Values and names are taken verbatim from the Opc.Ua.StatusCodes.csv
// export the OPC Foundation publishes alongside the specification; see
// table_generate.go for the generation note.
var Table = map[uint32]string{
	0x00000000: "Good",
	0x002D0000: "Good_SubscriptionTransferred",
	0x002E0000: "Good_CompletesAsynchronously",
	0x002F0000: "Good_Overload",
	0x00300000: "Good_Clamped",
	0x00960000: "Good_LocalOverride",
	0x00A20000: "Good_EntryInserted",
	0x00A30000: "Good_EntryReplaced",
	0x00A70000: "Good_CommunicationEvent",
	0x00A80000: "Good_ShutdownEvent",
	0x00A90000: "Good_CallAgain",
	0x00AA0000: "Good_NonCriticalTimeout",
	0x00BA0000: "Good_ResultsMayBeIncomplete",

	0x406C0000: "Uncertain_ReferenceOutOfServer",
	0x408F0000: "Uncertain_NoCommunicationLastUsableValue",
	0x40900000: "Uncertain_LastUsableValue",
	0x40910000: "Uncertain_SubstituteValue",
	0x40920000: "Uncertain_InitialValue",
	0x40930000: "Uncertain_SensorNotAccurate",
	0x40940000: "Uncertain_EngineeringUnitsExceeded",
	0x40950000: "Uncertain_SubNormal",
	0x40A40000: "Uncertain_DataSubNormal",
	0x40BC0000: "Uncertain_ReferenceNotDeleted",
	0x40C00000: "Uncertain_NotAllNodesAvailable",

	0x80010000: "Bad_UnexpectedError",
	0x80020000: "Bad_InternalError",
	0x80030000: "Bad_OutOfMemory",
	0x80040000: "Bad_ResourceUnavailable",
	0x80050000: "Bad_CommunicationError",
	0x80060000: "Bad_EncodingError",
	0x80070000: "Bad_DecodingError",
	0x80080000: "Bad_EncodingLimitsExceeded",
	0x80090000: "Bad_UnknownResponse",
	0x800A0000: "Bad_Timeout",
	0x800B0000: "Bad_ServiceUnsupported",
	0x800C0000: "Bad_Shutdown",
	0x800D0000: "Bad_ServerNotConnected",
	0x800E0000: "Bad_ServerHalted",
	0x800F0000: "Bad_NothingToDo",
	0x80100000: "Bad_TooManyOperations",
	0x80110000: "Bad_DataTypeIdUnknown",
	0x80120000: "Bad_CertificateInvalid",
	0x80130000: "Bad_SecurityChecksFailed",
	0x80140000: "Bad_CertificateTimeInvalid",
	0x80150000: "Bad_CertificateIssuerTimeInvalid",
	0x80160000: "Bad_CertificateHostNameInvalid",
	0x80170000: "Bad_CertificateUriInvalid",
	0x80180000: "Bad_CertificateUseNotAllowed",
	0x80190000: "Bad_CertificateIssuerUseNotAllowed",
	0x801A0000: "Bad_CertificateUntrusted",
	0x801B0000: "Bad_CertificateRevocationUnknown",
	0x801C0000: "Bad_CertificateIssuerRevocationUnknown",
	0x801D0000: "Bad_CertificateRevoked",
	0x801E0000: "Bad_CertificateIssuerRevoked",
	0x801F0000: "Bad_UserAccessDenied",
	0x80200000: "Bad_IdentityTokenInvalid",
	0x80210000: "Bad_IdentityTokenRejected",
	0x80220000: "Bad_SecureChannelIdInvalid",
	0x80230000: "Bad_InvalidTimestamp",
	0x80240000: "Bad_NonceInvalid",
	0x80250000: "Bad_SessionIdInvalid",
	0x80260000: "Bad_SessionClosed",
	0x80270000: "Bad_SessionNotActivated",
	0x80280000: "Bad_SubscriptionIdInvalid",
	0x802A0000: "Bad_RequestHeaderInvalid",
	0x802B0000: "Bad_TimestampsToReturnInvalid",
	0x802C0000: "Bad_RequestCancelledByClient",
	0x802D0000: "Bad_TooManyArguments",
	0x80310000: "Bad_NoCommunication",
	0x80320000: "Bad_WaitingForInitialData",
	0x80330000: "Bad_NodeIdInvalid",
	0x80340000: "Bad_NodeIdUnknown",
	0x80350000: "Bad_AttributeIdInvalid",
	0x80360000: "Bad_IndexRangeInvalid",
	0x80370000: "Bad_IndexRangeNoData",
	0x80380000: "Bad_DataEncodingInvalid",
	0x80390000: "Bad_DataEncodingUnsupported",
	0x803A0000: "Bad_NotReadable",
	0x803B0000: "Bad_NotWritable",
	0x803C0000: "Bad_OutOfRange",
	0x803D0000: "Bad_NotSupported",
	0x803E0000: "Bad_NotFound",
	0x803F0000: "Bad_ObjectDeleted",
	0x80400000: "Bad_NotImplemented",
	0x80410000: "Bad_MonitoringModeInvalid",
	0x80420000: "Bad_MonitoredItemIdInvalid",
	0x80430000: "Bad_MonitoredItemFilterInvalid",
	0x80440000: "Bad_MonitoredItemFilterUnsupported",
	0x80450000: "Bad_FilterNotAllowed",
	0x80460000: "Bad_StructureMissing",
	0x80470000: "Bad_EventFilterInvalid",
	0x80480000: "Bad_ContentFilterInvalid",
	0x80490000: "Bad_FilterOperandInvalid",
	0x804A0000: "Bad_ContinuationPointInvalid",
	0x804B0000: "Bad_NoContinuationPoints",
	0x804C0000: "Bad_ReferenceTypeIdInvalid",
	0x804D0000: "Bad_BrowseDirectionInvalid",
	0x804E0000: "Bad_NodeNotInView",
	0x804F0000: "Bad_ServerUriInvalid",
	0x80500000: "Bad_ServerNameMissing",
	0x80510000: "Bad_DiscoveryUrlMissing",
	0x80520000: "Bad_SempahoreFileMissing",
	0x80530000: "Bad_RequestTypeInvalid",
	0x80540000: "Bad_SecurityModeRejected",
	0x80550000: "Bad_SecurityPolicyRejected",
	0x80560000: "Bad_TooManySessions",
	0x80570000: "Bad_UserSignatureInvalid",
	0x80580000: "Bad_ApplicationSignatureInvalid",
	0x80740000: "Bad_TypeMismatch",
	0x80750000: "Bad_MethodInvalid",
	0x80760000: "Bad_ArgumentsMissing",
	0x80770000: "Bad_TooManySubscriptions",
	0x80780000: "Bad_TooManyPublishRequests",
	0x80790000: "Bad_NoSubscription",
	0x807A0000: "Bad_SequenceNumberUnknown",
	0x807B0000: "Bad_MessageNotAvailable",
	0x807C0000: "Bad_InsufficientClientProfile",
	0x807D0000: "Bad_TcpServerTooBusy",
	0x807E0000: "Bad_TcpMessageTypeInvalid",
	0x807F0000: "Bad_TcpSecureChannelUnknown",
	0x80800000: "Bad_TcpMessageTooLarge",
	0x80810000: "Bad_TcpNotEnoughResources",
	0x80820000: "Bad_TcpInternalError",
	0x80830000: "Bad_TcpEndpointUrlInvalid",
	0x80840000: "Bad_RequestInterrupted",
	0x80850000: "Bad_RequestTimeout",
	0x80860000: "Bad_SecureChannelClosed",
	0x80870000: "Bad_SecureChannelTokenUnknown",
	0x80880000: "Bad_SequenceNumberInvalid",
	0x80890000: "Bad_ProtocolVersionUnsupported",
	0x808A0000: "Bad_NotConnected",
	0x808B0000: "Bad_DeviceFailure",
	0x808C0000: "Bad_SensorFailure",
	0x808D0000: "Bad_OutOfService",
	0x808E0000: "Bad_DeadbandFilterInvalid",
	0x80970000: "Bad_RefreshInProgress",
	0x80980000: "Bad_ConditionAlreadyDisabled",
	0x80990000: "Bad_ConditionDisabled",
	0x809A0000: "Bad_EventIdUnknown",
	0x809B0000: "Bad_NoData",
	0x809D0000: "Bad_DataLost",
	0x809E0000: "Bad_DataUnavailable",
	0x809F0000: "Bad_EntryExists",
	0x80A00000: "Bad_NoEntryExists",
	0x80A10000: "Bad_TimestampNotSupported",
	0x80AB0000: "Bad_InvalidArgument",
	0x80AC0000: "Bad_ConnectionRejected",
	0x80AD0000: "Bad_Disconnect",
	0x80AE0000: "Bad_ConnectionClosed",
	0x80AF0000: "Bad_InvalidState",
	0x80B00000: "Bad_EndOfStream",
	0x80B10000: "Bad_NoDataAvailable",
	0x80B20000: "Bad_WaitingForResponse",
	0x80B30000: "Bad_OperationAbandoned",
	0x80B40000: "Bad_ExpectedStreamToEndNormally",
	0x80B50000: "Bad_WouldBlock",
	0x80B60000: "Bad_SyntaxError",
	0x80B70000: "Bad_MaxConnectionsReached",
	0x80B80000: "Bad_RequestTooLarge",
	0x80B90000: "Bad_ResponseTooLarge",
}

// Symbol returns the symbolic name for code, or ok=false if code is not in
// the table. Callers should treat an unknown code as "no symbol", not as
// an error -- the non-reversible StatusCode encoding degrades to the bare
// numeric form in that case.
func Symbol(code uint32) (string, bool) {
	name, ok := Table[code]
	return name, ok
}
