package format_v6

// ComponentKind is the 16-bit tag naming a component's type.
type ComponentKind uint16

// Tag values 0-247. The Deleted* kinds are placeholders for retired
// components; they are valid tags and decode as normal components.
const (
	KindError ComponentKind = iota
	KindOff
	KindOn
	KindBuffer1
	KindNot
	KindAnd
	KindAnd3
	KindNand
	KindOr
	KindOr3
	KindNor
	KindXor
	KindXnor
	KindCounter8
	KindVirtualCounter8
	KindCounter64
	KindVirtualCounter64
	KindRam8
	KindVirtualRam8
	KindDeleted0
	KindDeleted1
	KindStack
	KindVirtualStack
	KindRegister8
	KindVirtualRegister8
	KindRegister8Red
	KindVirtualRegister8Red
	KindRegister8RedPlus
	KindVirtualRegister8RedPlus
	KindRegister64
	KindVirtualRegister64
	KindSwitch8
	KindMux8
	KindDecoder1
	KindDecoder3
	KindConstant8
	KindNot8
	KindOr8
	KindAnd8
	KindXor8
	KindEqual8
	KindDeleted2
	KindDeleted3
	KindNeg8
	KindAdd8
	KindMul8
	KindSplitter8
	KindMaker8
	KindSplitter64
	KindMaker64
	KindFullAdder
	KindBitMemory
	KindVirtualBitMemory
	KindDeleted10
	KindDecoder2
	KindTiming
	KindNoteSound
	KindDeleted4
	KindDeleted5
	KindKeyboard
	KindFileLoader
	KindHalt
	KindWireCluster
	KindLevelScreen
	KindProgram8_1
	KindProgram8_1Red
	KindDeleted6
	KindDeleted7
	KindProgram8_4
	KindLevelGate
	KindInput1
	KindLevelInput2Pin
	KindLevelInput3Pin
	KindLevelInput4Pin
	KindLevelInputConditions
	KindInput8
	KindInput64
	KindLevelInputCode
	KindLevelInputArch
	KindOutput1
	KindLevelOutput1Sum
	KindLevelOutput1Car
	KindDeleted8
	KindDeleted9
	KindLevelOutput2Pin
	KindLevelOutput3Pin
	KindLevelOutput4Pin
	KindOutput8
	KindOutput64
	KindLevelOutputArch
	KindLevelOutputCounter
	KindDeleted11
	KindCustom
	KindVirtualCustom
	KindProgram
	KindDelayLine1
	KindVirtualDelayLine1
	KindConsole
	KindShl8
	KindShr8
	KindConstant64
	KindNot64
	KindOr64
	KindAnd64
	KindXor64
	KindNeg64
	KindAdd64
	KindMul64
	KindEqual64
	KindLessU64
	KindLessI64
	KindShl64
	KindShr64
	KindMux64
	KindSwitch64
	KindProbeMemoryBit
	KindProbeMemoryWord
	KindAndOrLatch
	KindNandNandLatch
	KindNorNorLatch
	KindLessU8
	KindLessI8
	KindDotMatrixDisplay
	KindSegmentDisplay
	KindInput16
	KindInput32
	KindOutput16
	KindOutput32
	KindBidirectional1
	KindBidirectional8
	KindBidirectional16
	KindBidirectional32
	KindBidirectional64
	KindBuffer8
	KindBuffer16
	KindBuffer32
	KindBuffer64
	KindProbeWireBit
	KindProbeWireWord
	KindSwitch1
	KindOutput1z
	KindOutput8z
	KindOutput16z
	KindOutput32z
	KindOutput64z
	KindConstant16
	KindNot16
	KindOr16
	KindAnd16
	KindXor16
	KindNeg16
	KindAdd16
	KindMul16
	KindEqual16
	KindLessU16
	KindLessI16
	KindShl16
	KindShr16
	KindMux16
	KindSwitch16
	KindSplitter16
	KindMaker16
	KindRegister16
	KindVirtualRegister16
	KindCounter16
	KindVirtualCounter16
	KindConstant32
	KindNot32
	KindOr32
	KindAnd32
	KindXor32
	KindNeg32
	KindAdd32
	KindMul32
	KindEqual32
	KindLessU32
	KindLessI32
	KindShl32
	KindShr32
	KindMux32
	KindSwitch32
	KindSplitter32
	KindMaker32
	KindRegister32
	KindVirtualRegister32
	KindCounter32
	KindVirtualCounter32
	KindLevelOutput8z
	KindNand8
	KindNor8
	KindXnor8
	KindNand16
	KindNor16
	KindXnor16
	KindNand32
	KindNor32
	KindXnor32
	KindNand64
	KindNor64
	KindXnor64
	KindRam
	KindVirtualRam
	KindRamLatency
	KindVirtualRamLatency
	KindRamFast
	KindVirtualRamFast
	KindRom
	KindVirtualRom
	KindSolutionRom
	KindVirtualSolutionRom
	KindDelayLine8
	KindVirtualDelayLine8
	KindDelayLine16
	KindVirtualDelayLine16
	KindDelayLine32
	KindVirtualDelayLine32
	KindDelayLine64
	KindVirtualDelayLine64
	KindRamDualLoad
	KindVirtualRamDualLoad
	KindHdd
	KindVirtualHdd
	KindNetwork
	KindRol8
	KindRol16
	KindRol32
	KindRol64
	KindRor8
	KindRor16
	KindRor32
	KindRor64
	KindIndexerBit
	KindIndexerByte
	KindDivMod8
	KindDivMod16
	KindDivMod32
	KindDivMod64
	KindSpriteDisplay
	KindConfigDelay
	KindClock
	KindLevelInput1
	KindLevelInput8
	KindLevelOutput1
	KindLevelOutput8
	KindAshr8
	KindAshr16
	KindAshr32
	KindAshr64
)

// componentKindNames is indexed by tag value.
var componentKindNames = [...]string{
	KindError:                   "Error",
	KindOff:                     "Off",
	KindOn:                      "On",
	KindBuffer1:                 "Buffer1",
	KindNot:                     "Not",
	KindAnd:                     "And",
	KindAnd3:                    "And3",
	KindNand:                    "Nand",
	KindOr:                      "Or",
	KindOr3:                     "Or3",
	KindNor:                     "Nor",
	KindXor:                     "Xor",
	KindXnor:                    "Xnor",
	KindCounter8:                "Counter8",
	KindVirtualCounter8:         "VirtualCounter8",
	KindCounter64:               "Counter64",
	KindVirtualCounter64:        "VirtualCounter64",
	KindRam8:                    "Ram8",
	KindVirtualRam8:             "VirtualRam8",
	KindDeleted0:                "Deleted0",
	KindDeleted1:                "Deleted1",
	KindStack:                   "Stack",
	KindVirtualStack:            "VirtualStack",
	KindRegister8:               "Register8",
	KindVirtualRegister8:        "VirtualRegister8",
	KindRegister8Red:            "Register8Red",
	KindVirtualRegister8Red:     "VirtualRegister8Red",
	KindRegister8RedPlus:        "Register8RedPlus",
	KindVirtualRegister8RedPlus: "VirtualRegister8RedPlus",
	KindRegister64:              "Register64",
	KindVirtualRegister64:       "VirtualRegister64",
	KindSwitch8:                 "Switch8",
	KindMux8:                    "Mux8",
	KindDecoder1:                "Decoder1",
	KindDecoder3:                "Decoder3",
	KindConstant8:               "Constant8",
	KindNot8:                    "Not8",
	KindOr8:                     "Or8",
	KindAnd8:                    "And8",
	KindXor8:                    "Xor8",
	KindEqual8:                  "Equal8",
	KindDeleted2:                "Deleted2",
	KindDeleted3:                "Deleted3",
	KindNeg8:                    "Neg8",
	KindAdd8:                    "Add8",
	KindMul8:                    "Mul8",
	KindSplitter8:               "Splitter8",
	KindMaker8:                  "Maker8",
	KindSplitter64:              "Splitter64",
	KindMaker64:                 "Maker64",
	KindFullAdder:               "FullAdder",
	KindBitMemory:               "BitMemory",
	KindVirtualBitMemory:        "VirtualBitMemory",
	KindDeleted10:               "Deleted10",
	KindDecoder2:                "Decoder2",
	KindTiming:                  "Timing",
	KindNoteSound:               "NoteSound",
	KindDeleted4:                "Deleted4",
	KindDeleted5:                "Deleted5",
	KindKeyboard:                "Keyboard",
	KindFileLoader:              "FileLoader",
	KindHalt:                    "Halt",
	KindWireCluster:             "WireCluster",
	KindLevelScreen:             "LevelScreen",
	KindProgram8_1:              "Program8_1",
	KindProgram8_1Red:           "Program8_1Red",
	KindDeleted6:                "Deleted6",
	KindDeleted7:                "Deleted7",
	KindProgram8_4:              "Program8_4",
	KindLevelGate:               "LevelGate",
	KindInput1:                  "Input1",
	KindLevelInput2Pin:          "LevelInput2Pin",
	KindLevelInput3Pin:          "LevelInput3Pin",
	KindLevelInput4Pin:          "LevelInput4Pin",
	KindLevelInputConditions:    "LevelInputConditions",
	KindInput8:                  "Input8",
	KindInput64:                 "Input64",
	KindLevelInputCode:          "LevelInputCode",
	KindLevelInputArch:          "LevelInputArch",
	KindOutput1:                 "Output1",
	KindLevelOutput1Sum:         "LevelOutput1Sum",
	KindLevelOutput1Car:         "LevelOutput1Car",
	KindDeleted8:                "Deleted8",
	KindDeleted9:                "Deleted9",
	KindLevelOutput2Pin:         "LevelOutput2Pin",
	KindLevelOutput3Pin:         "LevelOutput3Pin",
	KindLevelOutput4Pin:         "LevelOutput4Pin",
	KindOutput8:                 "Output8",
	KindOutput64:                "Output64",
	KindLevelOutputArch:         "LevelOutputArch",
	KindLevelOutputCounter:      "LevelOutputCounter",
	KindDeleted11:               "Deleted11",
	KindCustom:                  "Custom",
	KindVirtualCustom:           "VirtualCustom",
	KindProgram:                 "Program",
	KindDelayLine1:              "DelayLine1",
	KindVirtualDelayLine1:       "VirtualDelayLine1",
	KindConsole:                 "Console",
	KindShl8:                    "Shl8",
	KindShr8:                    "Shr8",
	KindConstant64:              "Constant64",
	KindNot64:                   "Not64",
	KindOr64:                    "Or64",
	KindAnd64:                   "And64",
	KindXor64:                   "Xor64",
	KindNeg64:                   "Neg64",
	KindAdd64:                   "Add64",
	KindMul64:                   "Mul64",
	KindEqual64:                 "Equal64",
	KindLessU64:                 "LessU64",
	KindLessI64:                 "LessI64",
	KindShl64:                   "Shl64",
	KindShr64:                   "Shr64",
	KindMux64:                   "Mux64",
	KindSwitch64:                "Switch64",
	KindProbeMemoryBit:          "ProbeMemoryBit",
	KindProbeMemoryWord:         "ProbeMemoryWord",
	KindAndOrLatch:              "AndOrLatch",
	KindNandNandLatch:           "NandNandLatch",
	KindNorNorLatch:             "NorNorLatch",
	KindLessU8:                  "LessU8",
	KindLessI8:                  "LessI8",
	KindDotMatrixDisplay:        "DotMatrixDisplay",
	KindSegmentDisplay:          "SegmentDisplay",
	KindInput16:                 "Input16",
	KindInput32:                 "Input32",
	KindOutput16:                "Output16",
	KindOutput32:                "Output32",
	KindBidirectional1:          "Bidirectional1",
	KindBidirectional8:          "Bidirectional8",
	KindBidirectional16:         "Bidirectional16",
	KindBidirectional32:         "Bidirectional32",
	KindBidirectional64:         "Bidirectional64",
	KindBuffer8:                 "Buffer8",
	KindBuffer16:                "Buffer16",
	KindBuffer32:                "Buffer32",
	KindBuffer64:                "Buffer64",
	KindProbeWireBit:            "ProbeWireBit",
	KindProbeWireWord:           "ProbeWireWord",
	KindSwitch1:                 "Switch1",
	KindOutput1z:                "Output1z",
	KindOutput8z:                "Output8z",
	KindOutput16z:               "Output16z",
	KindOutput32z:               "Output32z",
	KindOutput64z:               "Output64z",
	KindConstant16:              "Constant16",
	KindNot16:                   "Not16",
	KindOr16:                    "Or16",
	KindAnd16:                   "And16",
	KindXor16:                   "Xor16",
	KindNeg16:                   "Neg16",
	KindAdd16:                   "Add16",
	KindMul16:                   "Mul16",
	KindEqual16:                 "Equal16",
	KindLessU16:                 "LessU16",
	KindLessI16:                 "LessI16",
	KindShl16:                   "Shl16",
	KindShr16:                   "Shr16",
	KindMux16:                   "Mux16",
	KindSwitch16:                "Switch16",
	KindSplitter16:              "Splitter16",
	KindMaker16:                 "Maker16",
	KindRegister16:              "Register16",
	KindVirtualRegister16:       "VirtualRegister16",
	KindCounter16:               "Counter16",
	KindVirtualCounter16:        "VirtualCounter16",
	KindConstant32:              "Constant32",
	KindNot32:                   "Not32",
	KindOr32:                    "Or32",
	KindAnd32:                   "And32",
	KindXor32:                   "Xor32",
	KindNeg32:                   "Neg32",
	KindAdd32:                   "Add32",
	KindMul32:                   "Mul32",
	KindEqual32:                 "Equal32",
	KindLessU32:                 "LessU32",
	KindLessI32:                 "LessI32",
	KindShl32:                   "Shl32",
	KindShr32:                   "Shr32",
	KindMux32:                   "Mux32",
	KindSwitch32:                "Switch32",
	KindSplitter32:              "Splitter32",
	KindMaker32:                 "Maker32",
	KindRegister32:              "Register32",
	KindVirtualRegister32:       "VirtualRegister32",
	KindCounter32:               "Counter32",
	KindVirtualCounter32:        "VirtualCounter32",
	KindLevelOutput8z:           "LevelOutput8z",
	KindNand8:                   "Nand8",
	KindNor8:                    "Nor8",
	KindXnor8:                   "Xnor8",
	KindNand16:                  "Nand16",
	KindNor16:                   "Nor16",
	KindXnor16:                  "Xnor16",
	KindNand32:                  "Nand32",
	KindNor32:                   "Nor32",
	KindXnor32:                  "Xnor32",
	KindNand64:                  "Nand64",
	KindNor64:                   "Nor64",
	KindXnor64:                  "Xnor64",
	KindRam:                     "Ram",
	KindVirtualRam:              "VirtualRam",
	KindRamLatency:              "RamLatency",
	KindVirtualRamLatency:       "VirtualRamLatency",
	KindRamFast:                 "RamFast",
	KindVirtualRamFast:          "VirtualRamFast",
	KindRom:                     "Rom",
	KindVirtualRom:              "VirtualRom",
	KindSolutionRom:             "SolutionRom",
	KindVirtualSolutionRom:      "VirtualSolutionRom",
	KindDelayLine8:              "DelayLine8",
	KindVirtualDelayLine8:       "VirtualDelayLine8",
	KindDelayLine16:             "DelayLine16",
	KindVirtualDelayLine16:      "VirtualDelayLine16",
	KindDelayLine32:             "DelayLine32",
	KindVirtualDelayLine32:      "VirtualDelayLine32",
	KindDelayLine64:             "DelayLine64",
	KindVirtualDelayLine64:      "VirtualDelayLine64",
	KindRamDualLoad:             "RamDualLoad",
	KindVirtualRamDualLoad:      "VirtualRamDualLoad",
	KindHdd:                     "Hdd",
	KindVirtualHdd:              "VirtualHdd",
	KindNetwork:                 "Network",
	KindRol8:                    "Rol8",
	KindRol16:                   "Rol16",
	KindRol32:                   "Rol32",
	KindRol64:                   "Rol64",
	KindRor8:                    "Ror8",
	KindRor16:                   "Ror16",
	KindRor32:                   "Ror32",
	KindRor64:                   "Ror64",
	KindIndexerBit:              "IndexerBit",
	KindIndexerByte:             "IndexerByte",
	KindDivMod8:                 "DivMod8",
	KindDivMod16:                "DivMod16",
	KindDivMod32:                "DivMod32",
	KindDivMod64:                "DivMod64",
	KindSpriteDisplay:           "SpriteDisplay",
	KindConfigDelay:             "ConfigDelay",
	KindClock:                   "Clock",
	KindLevelInput1:             "LevelInput1",
	KindLevelInput8:             "LevelInput8",
	KindLevelOutput1:            "LevelOutput1",
	KindLevelOutput8:            "LevelOutput8",
	KindAshr8:                   "Ashr8",
	KindAshr16:                  "Ashr16",
	KindAshr32:                  "Ashr32",
	KindAshr64:                  "Ashr64",
}
