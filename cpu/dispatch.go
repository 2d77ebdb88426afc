package cpu

// init builds the 256-entry opcode dispatch table once at package load.
// Each entry only records instruction length and the exec function;
// register/@Ri group decoding happens inside the handlers from the opcode
// byte Step() passes them, not here (spec.md §4.E, §9 design note).
func init() {
	set := func(op byte, size int, name string, fn func(c *CPU, opcode, op1, op2 byte) int) {
		dispatchTable[op] = opEntry{size: size, name: name, exec: fn}
	}

	set(0x00, 1, "NOP", execNOP)
	set(0x02, 3, "LJMP", execLJMP)
	set(0x03, 1, "RR A", execRR)
	set(0x04, 1, "INC A", execINCA)
	set(0x05, 2, "INC direct", execINCDirect)
	set(0x06, 1, "INC @R0", incIndirect(0))
	set(0x07, 1, "INC @R1", incIndirect(1))
	set(0x10, 3, "JBC bit,rel", execJBC)
	set(0x12, 3, "LCALL", execLCALL)
	set(0x13, 1, "RRC A", execRRC)
	set(0x14, 1, "DEC A", execDECA)
	set(0x15, 2, "DEC direct", execDECDirect)
	set(0x16, 1, "DEC @R0", decIndirect(0))
	set(0x17, 1, "DEC @R1", decIndirect(1))
	set(0x20, 3, "JB bit,rel", execJB)
	set(0x22, 1, "RET", execRET)
	set(0x23, 1, "RL A", execRL)
	set(0x24, 2, "ADD A,#imm", execADDImm)
	set(0x25, 2, "ADD A,direct", execADDDirect)
	set(0x26, 1, "ADD A,@R0", addIndirect(0))
	set(0x27, 1, "ADD A,@R1", addIndirect(1))
	set(0x30, 3, "JNB bit,rel", execJNB)
	set(0x32, 1, "RETI", execRETI)
	set(0x33, 1, "RLC A", execRLC)
	set(0x34, 2, "ADDC A,#imm", execADDCImm)
	set(0x35, 2, "ADDC A,direct", execADDCDirect)
	set(0x36, 1, "ADDC A,@R0", addcIndirect(0))
	set(0x37, 1, "ADDC A,@R1", addcIndirect(1))
	set(0x40, 2, "JC rel", execJC)
	set(0x42, 2, "ORL direct,A", execORLDirectA)
	set(0x43, 3, "ORL direct,#imm", execORLDirectImm)
	set(0x44, 2, "ORL A,#imm", execORLAImm)
	set(0x45, 2, "ORL A,direct", execORLADirect)
	set(0x46, 1, "ORL A,@R0", orlAIndirect(0))
	set(0x47, 1, "ORL A,@R1", orlAIndirect(1))
	set(0x50, 2, "JNC rel", execJNC)
	set(0x52, 2, "ANL direct,A", execANLDirectA)
	set(0x53, 3, "ANL direct,#imm", execANLDirectImm)
	set(0x54, 2, "ANL A,#imm", execANLAImm)
	set(0x55, 2, "ANL A,direct", execANLADirect)
	set(0x56, 1, "ANL A,@R0", anlAIndirect(0))
	set(0x57, 1, "ANL A,@R1", anlAIndirect(1))
	set(0x60, 2, "JZ rel", execJZ)
	set(0x62, 2, "XRL direct,A", execXRLDirectA)
	set(0x63, 3, "XRL direct,#imm", execXRLDirectImm)
	set(0x64, 2, "XRL A,#imm", execXRLAImm)
	set(0x65, 2, "XRL A,direct", execXRLADirect)
	set(0x66, 1, "XRL A,@R0", xrlAIndirect(0))
	set(0x67, 1, "XRL A,@R1", xrlAIndirect(1))
	set(0x70, 2, "JNZ rel", execJNZ)
	set(0x72, 2, "ORL C,bit", execORLCBit)
	set(0x73, 1, "JMP @A+DPTR", execJMPIndirect)
	set(0x74, 2, "MOV A,#imm", execMOVAImm)
	set(0x75, 3, "MOV direct,#imm", execMOVDirectImm)
	set(0x76, 2, "MOV @R0,#imm", movIndirectImm(0))
	set(0x77, 2, "MOV @R1,#imm", movIndirectImm(1))
	set(0x80, 2, "SJMP rel", execSJMP)
	set(0x82, 2, "ANL C,bit", execANLCBit)
	set(0x83, 1, "MOVC A,@A+PC", execMOVCIndirectPC)
	set(0x84, 1, "DIV AB", execDIV)
	set(0x85, 3, "MOV direct,direct", execMOVDirectDirect)
	set(0x86, 2, "MOV direct,@R0", movDirectIndirect(0))
	set(0x87, 2, "MOV direct,@R1", movDirectIndirect(1))
	set(0x90, 3, "MOV DPTR,#imm16", execMOVDPTRImm)
	set(0x92, 2, "MOV bit,C", execMOVBitC)
	set(0x93, 1, "MOVC A,@A+DPTR", execMOVCIndirectDPTR)
	set(0x94, 2, "SUBB A,#imm", execSUBBImm)
	set(0x95, 2, "SUBB A,direct", execSUBBDirect)
	set(0x96, 1, "SUBB A,@R0", subbIndirect(0))
	set(0x97, 1, "SUBB A,@R1", subbIndirect(1))
	set(0xA0, 2, "ORL C,/bit", execORLCNotBit)
	set(0xA2, 2, "MOV C,bit", execMOVCBit)
	set(0xA3, 1, "INC DPTR", execINCDPTR)
	set(0xA4, 1, "MUL AB", execMUL)
	set(0xA5, 1, "reserved", execIllegal)
	set(0xA6, 2, "MOV @R0,direct", movIndirectDirect(0))
	set(0xA7, 2, "MOV @R1,direct", movIndirectDirect(1))
	set(0xB0, 2, "ANL C,/bit", execANLCNotBit)
	set(0xB2, 2, "CPL bit", execCPLBit)
	set(0xB3, 1, "CPL C", execCPLC)
	set(0xB4, 3, "CJNE A,#imm,rel", execCJNEImm)
	set(0xB5, 3, "CJNE A,direct,rel", execCJNEDirect)
	set(0xB6, 3, "CJNE @R0,#imm,rel", cjneIndirect(0))
	set(0xB7, 3, "CJNE @R1,#imm,rel", cjneIndirect(1))
	set(0xC0, 2, "PUSH direct", execPUSH)
	set(0xC2, 2, "CLR bit", execCLRBit)
	set(0xC3, 1, "CLR C", execCLRC)
	set(0xC4, 1, "SWAP A", execSWAP)
	set(0xC5, 2, "XCH A,direct", execXCHDirect)
	set(0xC6, 1, "XCH A,@R0", xchIndirect(0))
	set(0xC7, 1, "XCH A,@R1", xchIndirect(1))
	set(0xD0, 2, "POP direct", execPOP)
	set(0xD2, 2, "SETB bit", execSETBBit)
	set(0xD3, 1, "SETB C", execSETBC)
	set(0xD4, 1, "DA A", execDAA)
	set(0xD5, 3, "DJNZ direct,rel", execDJNZDirect)
	set(0xD6, 1, "XCHD A,@R0", xchdIndirect(0))
	set(0xD7, 1, "XCHD A,@R1", xchdIndirect(1))
	set(0xE0, 1, "MOVX A,@DPTR", execMOVXADPTR)
	set(0xE2, 1, "MOVX A,@R0", movXAIndirect(0))
	set(0xE3, 1, "MOVX A,@R1", movXAIndirect(1))
	set(0xE4, 1, "CLR A", execCLRA)
	set(0xE5, 2, "MOV A,direct", execMOVADirect)
	set(0xE6, 1, "MOV A,@R0", movAIndirect(0))
	set(0xE7, 1, "MOV A,@R1", movAIndirect(1))
	set(0xF0, 1, "MOVX @DPTR,A", execMOVXDPTRA)
	set(0xF2, 1, "MOVX @R0,A", movXIndirectA(0))
	set(0xF3, 1, "MOVX @R1,A", movXIndirectA(1))
	set(0xF4, 1, "CPL A", execCPLA)
	set(0xF5, 2, "MOV direct,A", execMOVDirectA)
	set(0xF6, 1, "MOV @R0,A", movIndirectA(0))
	set(0xF7, 1, "MOV @R1,A", movIndirectA(1))

	// AJMP/ACALL: fixed low 5 bits, 8 page variants each.
	for page := byte(0); page < 8; page++ {
		p := page
		set(p<<5|0x01, 2, "AJMP", execAJMP)
		set(p<<5|0x11, 2, "ACALL", execACALL)
	}

	// Rn-indexed groups (8 consecutive opcodes each).
	for n := byte(0); n < 8; n++ {
		rn := n
		set(0x08+n, 1, "INC Rn", incReg(rn))
		set(0x18+n, 1, "DEC Rn", decReg(rn))
		set(0x28+n, 1, "ADD A,Rn", addReg(rn))
		set(0x38+n, 1, "ADDC A,Rn", addcReg(rn))
		set(0x48+n, 1, "ORL A,Rn", orlAReg(rn))
		set(0x58+n, 1, "ANL A,Rn", anlAReg(rn))
		set(0x68+n, 1, "XRL A,Rn", xrlAReg(rn))
		set(0x78+n, 2, "MOV Rn,#imm", movRegImm(rn))
		set(0x88+n, 2, "MOV direct,Rn", execMOVDirectReg(rn))
		set(0x98+n, 1, "SUBB A,Rn", subbReg(rn))
		set(0xA8+n, 2, "MOV Rn,direct", movRegDirect(rn))
		set(0xB8+n, 3, "CJNE Rn,#imm,rel", cjneReg(rn))
		set(0xC8+n, 1, "XCH A,Rn", xchReg(rn))
		set(0xD8+n, 2, "DJNZ Rn,rel", execDJNZReg)
		set(0xE8+n, 1, "MOV A,Rn", movAReg(rn))
		set(0xF8+n, 1, "MOV Rn,A", movRegA(rn))
	}
}
